package store

import "errors"

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrStoreNotFound       = errors.New("medical store not found")
	ErrInvalidStatus       = errors.New("unknown status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)
