package handler

import (
	"net/http"

	"arogya360-portal/internal/service"
	"arogya360-portal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type CompleteVisitRequest struct {
	Diagnosis string `json:"diagnosis"`
}

// PrescriptionRequest accepts either a comma-separated list or explicit items
type PrescriptionRequest struct {
	Medicines string   `json:"medicines"`
	Items     []string `json:"items"`
}

// GetQueue returns the patient queue
// GET /doctor/queue
func (h *DoctorHandler) GetQueue(c *gin.Context) {
	queue := h.doctorService.Queue()

	utils.SuccessResponse(c, gin.H{
		"appointments": queue,
		"count":        len(queue),
	})
}

// SelectPatient marks the appointment Active
// POST /doctor/appointments/:id/select
func (h *DoctorHandler) SelectPatient(c *gin.Context) {
	appointment, err := h.doctorService.SelectPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to select patient")
		return
	}

	utils.SuccessResponse(c, appointment)
}

// CompleteVisit marks the appointment Completed
// POST /doctor/appointments/:id/complete
func (h *DoctorHandler) CompleteVisit(c *gin.Context) {
	var req CompleteVisitRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	appointment, err := h.doctorService.CompleteVisit(c.Request.Context(), c.Param("id"), req.Diagnosis)
	if err != nil {
		respondError(c, err, "Failed to complete visit")
		return
	}

	utils.SuccessResponse(c, appointment)
}

// CancelVisit marks the appointment Cancelled
// POST /doctor/appointments/:id/cancel
func (h *DoctorHandler) CancelVisit(c *gin.Context) {
	appointment, err := h.doctorService.CancelVisit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to cancel visit")
		return
	}

	utils.SuccessResponse(c, appointment)
}

// Prescribe sends medicines to the pharmacy
// POST /doctor/appointments/:id/prescriptions
func (h *DoctorHandler) Prescribe(c *gin.Context) {
	var req PrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	items := req.Items
	if len(items) == 0 {
		items = service.ParseMedicines(req.Medicines)
	}

	order, err := h.doctorService.Prescribe(c.Request.Context(), c.Param("id"), items)
	if err != nil {
		respondError(c, err, "Failed to send prescription")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Prescription sent successfully to the Pharmacy Dashboard",
		"order":   order,
	})
}

// Analyze runs the AI assessment for an appointment
// POST /doctor/appointments/:id/analysis
func (h *DoctorHandler) Analyze(c *gin.Context) {
	var req service.AnalysisRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	text, err := h.doctorService.Analyze(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to analyze patient data")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"analysis": text,
	})
}
