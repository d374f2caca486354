package get_appointment_stats

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/reports/models"
)

type ReportsService interface {
	Stats(ctx context.Context, period domain.ReportPeriod) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
