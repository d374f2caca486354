package reports

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// ReportsRepository интерфейс репозитория отчётных выборок
type ReportsRepository interface {
	MonthStats(ctx context.Context, period domain.ReportPeriod) (*domain.MonthStats, error)
	MonthlyRevenue(ctx context.Context, period domain.ReportPeriod) ([]domain.DailyRevenue, error)
	ServiceRevenue(ctx context.Context, period domain.ReportPeriod) ([]domain.ServiceRevenue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
