package store

import (
	"testing"

	"arogya360-portal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckAppointmentTransition(t *testing.T) {
	tests := []struct {
		from, to models.AppointmentStatus
		wantErr  error
	}{
		{models.AppointmentPending, models.AppointmentActive, nil},
		{models.AppointmentPending, models.AppointmentCancelled, nil},
		{models.AppointmentActive, models.AppointmentActive, nil},
		{models.AppointmentActive, models.AppointmentCompleted, nil},
		{models.AppointmentPending, models.AppointmentCompleted, ErrInvalidTransition},
		{models.AppointmentCompleted, models.AppointmentActive, ErrInvalidTransition},
		{models.AppointmentCancelled, models.AppointmentPending, ErrInvalidTransition},
		{models.AppointmentPending, "Done", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := checkAppointmentTransition(tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNextOrderStatus(t *testing.T) {
	next, ok := NextOrderStatus(models.OrderPending)
	assert.True(t, ok)
	assert.Equal(t, models.OrderProcessing, next)

	next, ok = NextOrderStatus(models.OrderPacked)
	assert.True(t, ok)
	assert.Equal(t, models.OrderOutForDelivery, next)

	_, ok = NextOrderStatus(models.OrderDelivered)
	assert.False(t, ok)
	_, ok = NextOrderStatus(models.OrderCancelled)
	assert.False(t, ok)
}

func TestRandomPricer(t *testing.T) {
	for i := 0; i < 100; i++ {
		price := DefaultPricer.Price(nil)
		assert.GreaterOrEqual(t, price, 150.0)
		assert.Less(t, price, 1150.0)
		assert.Equal(t, float64(int(price)), price)
	}
	assert.Equal(t, 99.0, RandomPricer{Min: 99}.Price(nil))
}
