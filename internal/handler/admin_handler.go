package handler

import (
	"net/http"

	"arogya360-portal/internal/models"
	"arogya360-portal/internal/service"
	"arogya360-portal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GetStats returns the analytics summary
// GET /admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	utils.SuccessResponse(c, h.adminService.Stats())
}

// GetHospitals lists all hospitals
// GET /admin/hospitals
func (h *AdminHandler) GetHospitals(c *gin.Context) {
	hospitals := h.adminService.Hospitals()

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// CreateHospital adds a hospital
// POST /admin/hospitals
func (h *AdminHandler) CreateHospital(c *gin.Context) {
	var in models.HospitalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital := h.adminService.AddHospital(c.Request.Context(), in)

	utils.CreatedResponse(c, gin.H{
		"message":  "Hospital created successfully",
		"hospital": hospital,
	})
}

// DeleteHospital removes a hospital
// DELETE /admin/hospitals/:id
func (h *AdminHandler) DeleteHospital(c *gin.Context) {
	if err := h.adminService.DeleteHospital(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete hospital")
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}

// GetStores lists all medical stores
// GET /admin/stores
func (h *AdminHandler) GetStores(c *gin.Context) {
	stores := h.adminService.Stores()

	utils.SuccessResponse(c, gin.H{
		"stores": stores,
		"count":  len(stores),
	})
}

// CreateStore adds a medical store
// POST /admin/stores
func (h *AdminHandler) CreateStore(c *gin.Context) {
	var in models.StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	store := h.adminService.AddStore(c.Request.Context(), in)

	utils.CreatedResponse(c, gin.H{
		"message": "Medical store created successfully",
		"store":   store,
	})
}

// DeleteStore removes a medical store
// DELETE /admin/stores/:id
func (h *AdminHandler) DeleteStore(c *gin.Context) {
	if err := h.adminService.DeleteStore(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete medical store")
		return
	}

	utils.MessageResponse(c, "Medical store deleted successfully")
}

// Export downloads every collection as one JSON document
// GET /admin/export
func (h *AdminHandler) Export(c *gin.Context) {
	blob, filename, err := h.adminService.Export()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to export data")
		return
	}

	utils.AttachmentResponse(c, filename, "application/json", blob)
}

// Reset restores the demo dataset
// POST /admin/reset
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.adminService.Reset(c.Request.Context()); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to reset data")
		return
	}

	utils.MessageResponse(c, "All data reset to defaults")
}
