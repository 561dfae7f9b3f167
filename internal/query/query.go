// Package query holds the read-only projections each role dashboard renders.
// Every function is total: empty input yields empty output.
package query

import (
	"slices"
	"strings"

	"arogya360-portal/internal/models"
)

// ActiveQueue returns the appointments a doctor still has to see
func ActiveQueue(appointments []models.Appointment) []models.Appointment {
	return filter(appointments, func(a models.Appointment) bool {
		return !a.Status.Closed()
	})
}

// OrdersByStatus returns the orders whose status is any of statuses
func OrdersByStatus(orders []models.MedicineOrder, statuses ...models.OrderStatus) []models.MedicineOrder {
	return filter(orders, func(o models.MedicineOrder) bool {
		return slices.Contains(statuses, o.Status)
	})
}

// NewOrders are orders the store has not packed yet
func NewOrders(orders []models.MedicineOrder) []models.MedicineOrder {
	return OrdersByStatus(orders, models.OrderPending, models.OrderProcessing)
}

// ActiveDeliveries are packed orders that have not been delivered
func ActiveDeliveries(orders []models.MedicineOrder) []models.MedicineOrder {
	return OrdersByStatus(orders, models.OrderPacked, models.OrderOutForDelivery)
}

// SearchHospitals matches q case-insensitively against hospital names and
// specializations. A blank query matches everything.
func SearchHospitals(hospitals []models.Hospital, q string) []models.Hospital {
	needle := strings.ToLower(strings.TrimSpace(q))
	return filter(hospitals, func(h models.Hospital) bool {
		if strings.Contains(strings.ToLower(h.Name), needle) {
			return true
		}
		return slices.ContainsFunc(h.Specializations, func(s string) bool {
			return strings.Contains(strings.ToLower(s), needle)
		})
	})
}

func TotalRevenue(orders []models.MedicineOrder) float64 {
	var total float64
	for _, o := range orders {
		total += o.TotalAmount
	}
	return total
}

func AppointmentsForPatient(appointments []models.Appointment, patientName string) []models.Appointment {
	return filter(appointments, func(a models.Appointment) bool {
		return a.PatientName == patientName
	})
}

func OrdersForPatient(orders []models.MedicineOrder, patientName string) []models.MedicineOrder {
	return filter(orders, func(o models.MedicineOrder) bool {
		return o.PatientName == patientName
	})
}

// ActiveToken returns the patient's appointment currently being seen, if any
func ActiveToken(appointments []models.Appointment, patientName string) (models.Appointment, bool) {
	i := slices.IndexFunc(appointments, func(a models.Appointment) bool {
		return a.PatientName == patientName && a.Status == models.AppointmentActive
	})
	if i < 0 {
		return models.Appointment{}, false
	}
	return appointments[i], true
}

func DoctorsAtHospital(doctors []models.Doctor, hospitalID string) []models.Doctor {
	return filter(doctors, func(d models.Doctor) bool {
		return d.HospitalID == hospitalID
	})
}

// Stats is the admin analytics summary
type Stats struct {
	TotalAppointments int     `json:"totalAppointments"`
	ActiveHospitals   int     `json:"activeHospitals"`
	ActiveStores      int     `json:"activeStores"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PendingOrders     int     `json:"pendingOrders"`
	QueueLength       int     `json:"queueLength"`
}

func Summarize(snapshot models.PortalSnapshot) Stats {
	return Stats{
		TotalAppointments: len(snapshot.Appointments),
		ActiveHospitals:   len(snapshot.Hospitals),
		ActiveStores:      len(snapshot.Stores),
		TotalRevenue:      TotalRevenue(snapshot.Orders),
		PendingOrders:     len(NewOrders(snapshot.Orders)),
		QueueLength:       len(ActiveQueue(snapshot.Appointments)),
	}
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
