package handler

import (
	"context"
	"net/http"

	"arogya360-portal/internal/models"
	"arogya360-portal/internal/service"
	"arogya360-portal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct {
	pharmacyService *service.PharmacyService
}

func NewPharmacyHandler(pharmacyService *service.PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyService: pharmacyService,
	}
}

type OrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// GetBoard returns new orders and active deliveries
// GET /pharmacy/orders
func (h *PharmacyHandler) GetBoard(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		orders := h.pharmacyService.Orders(models.OrderStatus(status))
		utils.SuccessResponse(c, gin.H{
			"orders": orders,
			"count":  len(orders),
		})
		return
	}

	utils.SuccessResponse(c, h.pharmacyService.Board())
}

// Accept moves a Pending order to Processing
// POST /pharmacy/orders/:id/accept
func (h *PharmacyHandler) Accept(c *gin.Context) {
	h.advance(c, h.pharmacyService.Accept)
}

// Pack moves a Processing order to Packed
// POST /pharmacy/orders/:id/pack
func (h *PharmacyHandler) Pack(c *gin.Context) {
	h.advance(c, h.pharmacyService.Pack)
}

// Dispatch moves a Packed order to Out for Delivery
// POST /pharmacy/orders/:id/dispatch
func (h *PharmacyHandler) Dispatch(c *gin.Context) {
	h.advance(c, h.pharmacyService.Dispatch)
}

// Deliver moves an Out for Delivery order to Delivered
// POST /pharmacy/orders/:id/deliver
func (h *PharmacyHandler) Deliver(c *gin.Context) {
	h.advance(c, h.pharmacyService.Deliver)
}

// UpdateStatus sets an explicit status
// PATCH /pharmacy/orders/:id
func (h *PharmacyHandler) UpdateStatus(c *gin.Context) {
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.pharmacyService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}

	utils.SuccessResponse(c, order)
}

func (h *PharmacyHandler) advance(c *gin.Context, step func(context.Context, string) (models.MedicineOrder, error)) {
	order, err := step(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}

	utils.SuccessResponse(c, order)
}
