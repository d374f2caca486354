package get_service_revenue

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/reports/models"
)

type ReportsService interface {
	ServiceRevenue(ctx context.Context, period domain.ReportPeriod) ([]models.ServiceRevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
