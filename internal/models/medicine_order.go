package models

// OrderStatus is the fulfilment state of a medicine order
type OrderStatus string

const (
	OrderPending        OrderStatus = "Pending"
	OrderProcessing     OrderStatus = "Processing"
	OrderPacked         OrderStatus = "Packed"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

// OrderPipeline lists the fulfilment steps in the order a store advances them
var OrderPipeline = []OrderStatus{
	OrderPending,
	OrderProcessing,
	OrderPacked,
	OrderOutForDelivery,
	OrderDelivered,
}

// Valid reports whether s is one of the known order statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderPacked, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// MedicineOrder is created when a doctor sends a prescription to the pharmacy
type MedicineOrder struct {
	ID            string      `json:"id"`
	AppointmentID string      `json:"appointmentId"`
	PatientName   string      `json:"patientName"`
	Items         []string    `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        OrderStatus `json:"status"`
	Date          string      `json:"date"`
	Address       string      `json:"address"`
}
