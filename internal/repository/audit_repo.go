package repository

import (
	"arogya360-portal/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AuditRecorder persists a record of a role action
type AuditRecorder interface {
	CreateAuditLog(role models.Role, action string, details string) error
}

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(role models.Role, action string, details string) error {
	log := &models.AuditLog{
		Role:    string(role),
		Action:  action,
		Details: details,
	}
	return r.db.Create(log).Error
}

// LogAuditRepository writes audit entries to the application log only.
// Used when no database is configured.
type LogAuditRepository struct {
	logger zerolog.Logger
}

func NewLogAuditRepo(logger zerolog.Logger) *LogAuditRepository {
	return &LogAuditRepository{logger: logger.With().Str("component", "audit").Logger()}
}

func (r *LogAuditRepository) CreateAuditLog(role models.Role, action string, details string) error {
	r.logger.Info().
		Str("role", string(role)).
		Str("action", action).
		Str("details", details).
		Msg("audit")
	return nil
}
