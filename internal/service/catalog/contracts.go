package catalog

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, update domain.ServiceUpdate) error
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей,
// нужен для проверки ссылок перед удалением услуги
type AppointmentRepository interface {
	CountByServiceID(ctx context.Context, serviceID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
