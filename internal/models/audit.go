package models

import "time"

// AuditLog represents the audit_logs table
// Used for tracking admin and store-role actions
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Role      string    `gorm:"size:20;index" json:"role"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
