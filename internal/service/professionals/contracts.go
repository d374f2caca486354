package professionals

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Professional, error)
	EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error)
	Update(ctx context.Context, id int64, update domain.ProfessionalUpdate) error
	SetStatus(ctx context.Context, id int64, status domain.ProfessionalStatus) error
	ReplaceServices(ctx context.Context, professionalID int64, serviceIDs []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
