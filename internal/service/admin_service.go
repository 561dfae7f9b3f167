package service

import (
	"context"
	"fmt"

	"arogya360-portal/internal/models"
	"arogya360-portal/internal/query"
	"arogya360-portal/internal/repository"
	"arogya360-portal/internal/store"

	"github.com/rs/zerolog"
)

type AdminService struct {
	store     *store.Store
	auditRepo repository.AuditRecorder
	logger    zerolog.Logger
}

func NewAdminService(s *store.Store, auditRepo repository.AuditRecorder, logger zerolog.Logger) *AdminService {
	return &AdminService{
		store:     s,
		auditRepo: auditRepo,
		logger:    logger.With().Str("service", "admin").Logger(),
	}
}

// Stats returns the analytics cards of the admin dashboard
func (s *AdminService) Stats() query.Stats {
	return query.Summarize(s.store.Snapshot())
}

func (s *AdminService) Hospitals() []models.Hospital {
	return s.store.Hospitals()
}

func (s *AdminService) Stores() []models.MedicalStore {
	return s.store.Stores()
}

// AddHospital registers a new hospital
func (s *AdminService) AddHospital(ctx context.Context, in models.HospitalInput) models.Hospital {
	hospital := s.store.AddHospital(ctx, in)

	details := fmt.Sprintf("Created hospital: %s (ID: %s, city: %s)", hospital.Name, hospital.ID, hospital.City)
	s.audit("hospital_create", details)
	return hospital
}

// DeleteHospital removes a hospital from the listing
func (s *AdminService) DeleteHospital(ctx context.Context, id string) error {
	hospital, ok := s.store.HospitalByID(id)
	if !ok {
		return fmt.Errorf("failed to delete hospital: %w", store.ErrHospitalNotFound)
	}
	if err := s.store.DeleteHospital(ctx, id); err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}

	details := fmt.Sprintf("Deleted hospital: %s (ID: %s)", hospital.Name, id)
	s.audit("hospital_delete", details)
	return nil
}

// AddStore registers a new partner pharmacy
func (s *AdminService) AddStore(ctx context.Context, in models.StoreInput) models.MedicalStore {
	medicalStore := s.store.AddStore(ctx, in)

	details := fmt.Sprintf("Created medical store: %s (ID: %s)", medicalStore.Name, medicalStore.ID)
	s.audit("store_create", details)
	return medicalStore
}

func (s *AdminService) DeleteStore(ctx context.Context, id string) error {
	if err := s.store.DeleteStore(ctx, id); err != nil {
		return fmt.Errorf("failed to delete medical store: %w", err)
	}

	s.audit("store_delete", fmt.Sprintf("Deleted medical store ID: %s", id))
	return nil
}

// Export returns the backup document and its download name
func (s *AdminService) Export() ([]byte, string, error) {
	blob, err := s.store.Export()
	if err != nil {
		return nil, "", fmt.Errorf("failed to export data: %w", err)
	}
	s.audit("data_export", fmt.Sprintf("Exported %d bytes", len(blob)))
	return blob, s.store.ExportFilename(), nil
}

// Reset wipes all persisted data and reloads the demo dataset
func (s *AdminService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}
	s.audit("data_reset", "All collections reset to defaults")
	return nil
}

func (s *AdminService) audit(action, details string) {
	if err := s.auditRepo.CreateAuditLog(models.RoleAdmin, action, details); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Msg("audit log write failed")
	}
}
