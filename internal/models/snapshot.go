package models

import "time"

// Snapshot represents the snapshots table.
// Each row holds one full JSON-serialized collection and is replaced on every save.
type Snapshot struct {
	Key       string    `gorm:"column:snapshot_key;primaryKey;size:100" json:"key"`
	Payload   string    `gorm:"type:longtext;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Snapshot model
func (Snapshot) TableName() string {
	return "snapshots"
}

// PortalSnapshot is the export document: every collection, in store order
type PortalSnapshot struct {
	Hospitals    []Hospital      `json:"hospitals"`
	Doctors      []Doctor        `json:"doctors"`
	Appointments []Appointment   `json:"appointments"`
	Orders       []MedicineOrder `json:"orders"`
	Stores       []MedicalStore  `json:"stores"`
}
