package store

import (
	"fmt"

	"arogya360-portal/internal/models"
)

var appointmentTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.AppointmentPending: {models.AppointmentActive, models.AppointmentCancelled},
	models.AppointmentActive:  {models.AppointmentCompleted, models.AppointmentCancelled},
}

func checkAppointmentTransition(from, to models.AppointmentStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if from == to {
		return nil
	}
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// NextOrderStatus returns the step that follows s in the fulfilment pipeline
func NextOrderStatus(s models.OrderStatus) (models.OrderStatus, bool) {
	for i, step := range models.OrderPipeline {
		if step == s && i+1 < len(models.OrderPipeline) {
			return models.OrderPipeline[i+1], true
		}
	}
	return "", false
}

// Orders only move forward one step at a time; Cancelled is never a target
func checkOrderTransition(from, to models.OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if from == to {
		return nil
	}
	if next, ok := NextOrderStatus(from); ok && next == to {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
