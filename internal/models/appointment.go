package models

// AppointmentStatus is the lifecycle state of a booked token
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentActive    AppointmentStatus = "Active"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s is one of the known appointment statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentActive, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Closed reports whether no further transition is possible from s
func (s AppointmentStatus) Closed() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// Appointment represents a booked queue token.
// DoctorName and HospitalName are copied at booking time and are not kept in sync.
type Appointment struct {
	ID           string            `json:"id"`
	TokenNumber  int               `json:"tokenNumber"`
	PatientName  string            `json:"patientName"`
	DoctorName   string            `json:"doctorName"`
	HospitalName string            `json:"hospitalName"`
	Symptoms     string            `json:"symptoms"`
	Status       AppointmentStatus `json:"status"`
	Diagnosis    string            `json:"diagnosis,omitempty"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
}
