package service

import (
	"context"
	"fmt"
	"strings"

	"arogya360-portal/internal/models"
	"arogya360-portal/internal/query"
	"arogya360-portal/internal/store"

	"github.com/rs/zerolog"
)

type PatientService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewPatientService(s *store.Store, logger zerolog.Logger) *PatientService {
	return &PatientService{
		store:  s,
		logger: logger.With().Str("service", "patient").Logger(),
	}
}

// BookingRequest is what the patient submits from the booking modal
type BookingRequest struct {
	PatientName string `json:"patientName" binding:"required"`
	DoctorID    string `json:"doctorId" binding:"required"`
	Symptoms    string `json:"symptoms" binding:"required"`
}

// SearchHospitals filters hospitals by name or specialization
func (s *PatientService) SearchHospitals(q string) []models.Hospital {
	return query.SearchHospitals(s.store.Hospitals(), q)
}

// DoctorsAtHospital lists the doctors a patient can book at a hospital
func (s *PatientService) DoctorsAtHospital(hospitalID string) ([]models.Doctor, error) {
	if _, ok := s.store.HospitalByID(hospitalID); !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrHospitalNotFound, hospitalID)
	}
	return query.DoctorsAtHospital(s.store.Doctors(), hospitalID), nil
}

// BookAppointment books a token with the selected doctor
func (s *PatientService) BookAppointment(ctx context.Context, req BookingRequest) (models.Appointment, error) {
	appointment, err := s.store.BookAppointment(ctx,
		strings.TrimSpace(req.PatientName),
		req.DoctorID,
		strings.TrimSpace(req.Symptoms),
	)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to book appointment: %w", err)
	}

	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Int("token", appointment.TokenNumber).
		Str("doctor", appointment.DoctorName).
		Msg("appointment booked")
	return appointment, nil
}

// PatientOverview is the patient's "My Tokens" and pharmacy view
type PatientOverview struct {
	Appointments []models.Appointment   `json:"appointments"`
	ActiveToken  *models.Appointment    `json:"activeToken"`
	Orders       []models.MedicineOrder `json:"orders"`
}

func (s *PatientService) Overview(patientName string) PatientOverview {
	snapshot := s.store.Snapshot()
	overview := PatientOverview{
		Appointments: query.AppointmentsForPatient(snapshot.Appointments, patientName),
		Orders:       query.OrdersForPatient(snapshot.Orders, patientName),
	}
	if active, ok := query.ActiveToken(snapshot.Appointments, patientName); ok {
		overview.ActiveToken = &active
	}
	return overview
}
