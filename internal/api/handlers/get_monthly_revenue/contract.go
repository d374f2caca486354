package get_monthly_revenue

import (
	"context"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/reports/models"
)

type ReportsService interface {
	MonthlyRevenue(ctx context.Context, period domain.ReportPeriod) ([]models.DailyRevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
