package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" doctor ")
	assert.True(t, ok)
	assert.Equal(t, RoleDoctor, role)

	_, ok = ParseRole("nurse")
	assert.False(t, ok)
}

func TestNavigation(t *testing.T) {
	ids := func(items []NavItem) []string {
		out := []string{}
		for _, item := range items {
			out = append(out, item.ID)
		}
		return out
	}

	assert.Equal(t, []string{"dashboard", "tokens", "records", "pharmacy"}, ids(Navigation(RolePatient)))
	assert.Equal(t, []string{"dashboard", "patients", "records"}, ids(Navigation(RoleDoctor)))
	assert.Equal(t, []string{"dashboard", "hospitals", "stores"}, ids(Navigation(RoleAdmin)))
	assert.Equal(t, []string{"dashboard", "inventory"}, ids(Navigation(RoleStore)))

	items := Navigation(RoleStore)
	items[0].ID = "changed"
	assert.Equal(t, "dashboard", Navigation(RoleStore)[0].ID)
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, AppointmentCancelled.Closed())
	assert.False(t, AppointmentActive.Closed())
	assert.False(t, AppointmentStatus("Later").Valid())
	assert.True(t, OrderOutForDelivery.Valid())
	assert.False(t, OrderStatus("Lost").Valid())
}
