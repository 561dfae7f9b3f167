package service

import (
	"context"
	"fmt"
	"strings"

	"arogya360-portal/internal/analysis"
	"arogya360-portal/internal/models"
	"arogya360-portal/internal/query"
	"arogya360-portal/internal/store"

	"github.com/rs/zerolog"
)

// Used when the doctor asks for an analysis without entering history or vitals
const (
	DefaultHistory  = "Hypertension diagnosed 2 years ago. Allergic to Penicillin."
	DefaultVitals   = "BP: 145/90, HR: 82, Temp: 98.6F"
	DefaultSymptoms = "General Checkup"
)

type DoctorService struct {
	store    *store.Store
	analyzer analysis.Analyzer
	logger   zerolog.Logger
}

func NewDoctorService(s *store.Store, analyzer analysis.Analyzer, logger zerolog.Logger) *DoctorService {
	return &DoctorService{
		store:    s,
		analyzer: analyzer,
		logger:   logger.With().Str("service", "doctor").Logger(),
	}
}

// Queue returns the appointments that are neither completed nor cancelled
func (s *DoctorService) Queue() []models.Appointment {
	return query.ActiveQueue(s.store.Appointments())
}

// SelectPatient calls the patient in, marking the appointment Active
func (s *DoctorService) SelectPatient(ctx context.Context, appointmentID string) (models.Appointment, error) {
	appointment, err := s.store.UpdateAppointmentStatus(ctx, appointmentID, models.AppointmentActive, nil)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to select patient: %w", err)
	}
	return appointment, nil
}

// CompleteVisit closes the appointment, recording a diagnosis when one is given
func (s *DoctorService) CompleteVisit(ctx context.Context, appointmentID, diagnosis string) (models.Appointment, error) {
	appointment, err := s.store.UpdateAppointmentStatus(ctx, appointmentID, models.AppointmentCompleted, &diagnosis)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to complete visit: %w", err)
	}
	s.logger.Info().Str("appointment_id", appointmentID).Msg("visit completed")
	return appointment, nil
}

func (s *DoctorService) CancelVisit(ctx context.Context, appointmentID string) (models.Appointment, error) {
	appointment, err := s.store.UpdateAppointmentStatus(ctx, appointmentID, models.AppointmentCancelled, nil)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to cancel visit: %w", err)
	}
	return appointment, nil
}

// ParseMedicines splits a comma-separated prescription into items
func ParseMedicines(medicines string) []string {
	items := []string{}
	for _, item := range strings.Split(medicines, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Prescribe sends the prescribed medicines to the pharmacy as a new order
func (s *DoctorService) Prescribe(ctx context.Context, appointmentID string, items []string) (models.MedicineOrder, error) {
	if len(items) == 0 {
		return models.MedicineOrder{}, ErrEmptyPrescription
	}

	appointment, ok := s.store.AppointmentByID(appointmentID)
	if !ok {
		return models.MedicineOrder{}, fmt.Errorf("failed to prescribe: %w", store.ErrAppointmentNotFound)
	}

	order, err := s.store.CreateOrder(ctx, appointmentID, items, appointment.PatientName)
	if err != nil {
		return models.MedicineOrder{}, fmt.Errorf("failed to prescribe: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("appointment_id", appointmentID).
		Int("items", len(order.Items)).
		Msg("prescription sent to pharmacy")
	return order, nil
}

// AnalysisRequest carries the optional clinical context entered by the doctor
type AnalysisRequest struct {
	History string `json:"history"`
	Vitals  string `json:"vitals"`
}

// Analyze runs the AI assessment for an appointment. The context is the
// caller's request context, so a dismissed view cancels the model call.
func (s *DoctorService) Analyze(ctx context.Context, appointmentID string, req AnalysisRequest) (string, error) {
	appointment, ok := s.store.AppointmentByID(appointmentID)
	if !ok {
		return "", fmt.Errorf("failed to analyze: %w", store.ErrAppointmentNotFound)
	}

	symptoms := appointment.Symptoms
	if symptoms == "" {
		symptoms = DefaultSymptoms
	}
	history := req.History
	if history == "" {
		history = DefaultHistory
	}
	vitals := req.Vitals
	if vitals == "" {
		vitals = DefaultVitals
	}

	return s.analyzer.Analyze(ctx, symptoms, history, vitals), nil
}
