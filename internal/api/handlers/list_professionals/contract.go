package list_professionals

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/service/professionals/models"
)

type ProfessionalService interface {
	List(ctx context.Context) ([]models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
