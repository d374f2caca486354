package appointments

import (
	"context"
	"time"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetDetailsByID(ctx context.Context, id int64) (*domain.AppointmentDetails, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error)
	Delete(ctx context.Context, id int64) error
	DistinctDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
