package handler

import (
	"net/http"

	"arogya360-portal/internal/service"
	"arogya360-portal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// SearchHospitals lists hospitals matching the q search string
// GET /patient/hospitals?q=
func (h *PatientHandler) SearchHospitals(c *gin.Context) {
	hospitals := h.patientService.SearchHospitals(c.Query("q"))

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospitalDoctors lists doctors at a hospital for the booking modal
// GET /patient/hospitals/:id/doctors
func (h *PatientHandler) GetHospitalDoctors(c *gin.Context) {
	doctors, err := h.patientService.DoctorsAtHospital(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// BookAppointment books a token
// POST /patient/appointments
func (h *PatientHandler) BookAppointment(c *gin.Context) {
	var req service.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	appointment, err := h.patientService.BookAppointment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to book appointment")
		return
	}

	utils.CreatedResponse(c, appointment)
}

// GetOverview returns a patient's tokens and orders
// GET /patient/overview?patient=
func (h *PatientHandler) GetOverview(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "patient query parameter is required")
		return
	}

	utils.SuccessResponse(c, h.patientService.Overview(patient))
}

// GetAppointments lists a patient's tokens
// GET /patient/appointments?patient=
func (h *PatientHandler) GetAppointments(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "patient query parameter is required")
		return
	}

	overview := h.patientService.Overview(patient)
	utils.SuccessResponse(c, gin.H{
		"appointments": overview.Appointments,
		"activeToken":  overview.ActiveToken,
		"count":        len(overview.Appointments),
	})
}

// GetOrders lists a patient's medicine orders
// GET /patient/orders?patient=
func (h *PatientHandler) GetOrders(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "patient query parameter is required")
		return
	}

	orders := h.patientService.Overview(patient).Orders
	utils.SuccessResponse(c, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}
