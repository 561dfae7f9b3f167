package handler

import (
	"net/http"

	"arogya360-portal/internal/models"
	"arogya360-portal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetNavigation returns the navigation identifiers for a role
// GET /nav/:role
func GetNavigation(c *gin.Context) {
	role, ok := models.ParseRole(c.Param("role"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Unknown role")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"role":  role,
		"items": models.Navigation(role),
	})
}
