package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_IsValid(t *testing.T) {
	for _, s := range ValidStatuses {
		assert.True(t, s.IsValid(), "status %q must be valid", s)
	}

	assert.False(t, AppointmentStatus("postponed").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
	assert.False(t, AppointmentStatus("Scheduled").IsValid())
}

func TestAppointment_IsActive(t *testing.T) {
	a := &Appointment{Status: StatusScheduled}
	assert.True(t, a.IsActive())
	assert.False(t, a.IsCancelled())

	a.Status = StatusCancelled
	assert.False(t, a.IsActive())
	assert.True(t, a.IsCancelled())
}
