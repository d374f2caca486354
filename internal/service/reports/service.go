package reports

import (
	"context"
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/reports/models"
)

// Service сервис отчётов: агрегаты считаются на стороне БД,
// сервис только валидирует период и конвертирует результат
type Service struct {
	reportsRepo ReportsRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(reportsRepo ReportsRepository, logger Logger) *Service {
	return &Service{
		reportsRepo: reportsRepo,
		logger:      logger,
	}
}

// Stats возвращает статистику записей за месяц: количества по статусам
// и среднюю стоимость по всем записям месяца
func (s *Service) Stats(ctx context.Context, period domain.ReportPeriod) (*models.StatsResponse, error) {
	s.logger.Info("Stats: fetching stats for period %d-%02d", period.Year, period.Month)

	if !period.IsValid() {
		s.logger.Warn("Stats: invalid period %d-%d", period.Year, period.Month)
		return nil, fmt.Errorf("%w: year and month are required", ErrInvalidPeriod)
	}

	stats, err := s.reportsRepo.MonthStats(ctx, period)
	if err != nil {
		s.logger.Error("Stats: repository error for period %d-%02d: %v", period.Year, period.Month, err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Stats: period %d-%02d has %d appointments", period.Year, period.Month, stats.TotalAppointments)
	return models.FromDomainStats(stats), nil
}

// MonthlyRevenue возвращает выручку по дням месяца.
// Учитываются только завершённые записи; дни без выручки не возвращаются
func (s *Service) MonthlyRevenue(ctx context.Context, period domain.ReportPeriod) ([]models.DailyRevenueResponse, error) {
	s.logger.Info("MonthlyRevenue: fetching revenue for period %d-%02d", period.Year, period.Month)

	if !period.IsValid() {
		s.logger.Warn("MonthlyRevenue: invalid period %d-%d", period.Year, period.Month)
		return nil, fmt.Errorf("%w: year and month are required", ErrInvalidPeriod)
	}

	rows, err := s.reportsRepo.MonthlyRevenue(ctx, period)
	if err != nil {
		s.logger.Error("MonthlyRevenue: repository error for period %d-%02d: %v", period.Year, period.Month, err)
		return nil, fmt.Errorf("%w: MonthlyRevenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MonthlyRevenue: period %d-%02d has revenue on %d days", period.Year, period.Month, len(rows))
	return models.FromDomainDailyRevenue(rows), nil
}

// ServiceRevenue возвращает выручку по услугам за месяц.
// Учитываются только завершённые записи; сортировка по убыванию выручки
func (s *Service) ServiceRevenue(ctx context.Context, period domain.ReportPeriod) ([]models.ServiceRevenueResponse, error) {
	s.logger.Info("ServiceRevenue: fetching revenue for period %d-%02d", period.Year, period.Month)

	if !period.IsValid() {
		s.logger.Warn("ServiceRevenue: invalid period %d-%d", period.Year, period.Month)
		return nil, fmt.Errorf("%w: year and month are required", ErrInvalidPeriod)
	}

	rows, err := s.reportsRepo.ServiceRevenue(ctx, period)
	if err != nil {
		s.logger.Error("ServiceRevenue: repository error for period %d-%02d: %v", period.Year, period.Month, err)
		return nil, fmt.Errorf("%w: ServiceRevenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ServiceRevenue: period %d-%02d has %d services with revenue", period.Year, period.Month, len(rows))
	return models.FromDomainServiceRevenue(rows), nil
}
