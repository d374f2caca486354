package get_days_with_appointments

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/service/appointments/models"
)

type AppointmentService interface {
	DaysWithAppointments(ctx context.Context, req *models.DaysWithAppointmentsRequest) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
