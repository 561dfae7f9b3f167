package handler

import (
	"errors"
	"io"
	"net/http"

	"arogya360-portal/internal/service"
	"arogya360-portal/internal/store"
	"arogya360-portal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps store and service errors onto HTTP status codes
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrDoctorNotFound),
		errors.Is(err, store.ErrHospitalNotFound),
		errors.Is(err, store.ErrAppointmentNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrStoreNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidTransition):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, service.ErrEmptyPrescription):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// bindOptionalJSON binds a JSON body when one was sent
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
