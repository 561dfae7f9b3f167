package handler

import (
	"arogya360-portal/internal/config"
	"arogya360-portal/internal/middleware"
	"arogya360-portal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers groups the role handlers mounted by NewRouter
type Handlers struct {
	Patient  *PatientHandler
	Doctor   *DoctorHandler
	Admin    *AdminHandler
	Pharmacy *PharmacyHandler
}

func NewRouter(cfg *config.Config, logger zerolog.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg))

	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "arogya360-portal",
		})
	})

	r.GET("/nav/:role", GetNavigation)

	patient := r.Group("/patient")
	{
		patient.GET("/hospitals", h.Patient.SearchHospitals)
		patient.GET("/hospitals/:id/doctors", h.Patient.GetHospitalDoctors)
		patient.POST("/appointments", h.Patient.BookAppointment)
		patient.GET("/appointments", h.Patient.GetAppointments)
		patient.GET("/orders", h.Patient.GetOrders)
		patient.GET("/overview", h.Patient.GetOverview)
	}

	doctor := r.Group("/doctor")
	{
		doctor.GET("/queue", h.Doctor.GetQueue)
		doctor.POST("/appointments/:id/select", h.Doctor.SelectPatient)
		doctor.POST("/appointments/:id/complete", h.Doctor.CompleteVisit)
		doctor.POST("/appointments/:id/cancel", h.Doctor.CancelVisit)
		doctor.POST("/appointments/:id/prescriptions", h.Doctor.Prescribe)
		doctor.POST("/appointments/:id/analysis", h.Doctor.Analyze)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/stats", h.Admin.GetStats)
		admin.GET("/hospitals", h.Admin.GetHospitals)
		admin.POST("/hospitals", h.Admin.CreateHospital)
		admin.DELETE("/hospitals/:id", h.Admin.DeleteHospital)
		admin.GET("/stores", h.Admin.GetStores)
		admin.POST("/stores", h.Admin.CreateStore)
		admin.DELETE("/stores/:id", h.Admin.DeleteStore)
		admin.GET("/export", h.Admin.Export)
		admin.POST("/reset", h.Admin.Reset)
	}

	pharmacy := r.Group("/pharmacy")
	{
		pharmacy.GET("/orders", h.Pharmacy.GetBoard)
		pharmacy.PATCH("/orders/:id", h.Pharmacy.UpdateStatus)
		pharmacy.POST("/orders/:id/accept", h.Pharmacy.Accept)
		pharmacy.POST("/orders/:id/pack", h.Pharmacy.Pack)
		pharmacy.POST("/orders/:id/dispatch", h.Pharmacy.Dispatch)
		pharmacy.POST("/orders/:id/deliver", h.Pharmacy.Deliver)
	}

	return r
}
