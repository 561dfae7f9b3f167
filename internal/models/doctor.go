package models

// Doctor is read-only reference data; HospitalID is a weak reference
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	HospitalID     string `json:"hospitalId"`
}
