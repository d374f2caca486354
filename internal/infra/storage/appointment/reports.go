package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/pkg/dbmetrics"
	"github.com/barberhq/scheduling-service/pkg/psqlbuilder"
)

// monthBounds возвращает границы календарного месяца [start, end)
func monthBounds(period domain.ReportPeriod) (time.Time, time.Time) {
	start := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// MonthStats считает сводную статистику по записям месяца.
// Счётчики и среднее значение берутся по всем статусам — контракт
// исходной системы (среднее НЕ ограничено завершёнными записями).
func (r *Repository) MonthStats(ctx context.Context, period domain.ReportPeriod) (*domain.MonthStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	start, end := monthBounds(period)

	query, args, err := psqlbuilder.Select(
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE status = 'completed') AS completed",
		"COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled",
		"COUNT(*) FILTER (WHERE status = 'pending') AS pending",
		"COALESCE(AVG(total_value), 0) AS average_value",
	).
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": start}).
		Where(squirrel.Lt{"appointment_date": end}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MonthStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.MonthStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalAppointments,
		&stats.CompletedAppointments,
		&stats.CancelledAppointments,
		&stats.PendingAppointments,
		&stats.AverageValue,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: MonthStats - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}

// MonthlyRevenue считает выручку по дням месяца, только по завершённым
// записям. Дни без завершённых записей в результат не попадают.
func (r *Repository) MonthlyRevenue(ctx context.Context, period domain.ReportPeriod) ([]domain.DailyRevenue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	start, end := monthBounds(period)

	query, args, err := psqlbuilder.Select(
		"EXTRACT(DAY FROM appointment_date)::int AS day",
		"COUNT(*) AS appointments_count",
		"COALESCE(SUM(total_value), 0) AS daily_revenue",
	).
		From("appointments").
		Where(squirrel.Eq{"status": domain.StatusCompleted}).
		Where(squirrel.GtOrEq{"appointment_date": start}).
		Where(squirrel.Lt{"appointment_date": end}).
		GroupBy("day").
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyRevenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyRevenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	revenue := make([]domain.DailyRevenue, 0)
	for rows.Next() {
		var day domain.DailyRevenue
		if err := rows.Scan(&day.Day, &day.AppointmentsCount, &day.DailyRevenue); err != nil {
			return nil, fmt.Errorf("%w: MonthlyRevenue - scan row: %v", ErrScanRow, err)
		}
		revenue = append(revenue, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MonthlyRevenue - rows error: %v", ErrScanRow, err)
	}

	return revenue, nil
}

// ServiceRevenue считает выручку по услугам за месяц, только по
// завершённым записям, в порядке убывания выручки
func (r *Repository) ServiceRevenue(ctx context.Context, period domain.ReportPeriod) ([]domain.ServiceRevenue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	start, end := monthBounds(period)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.name",
		"COUNT(*) AS appointment_count",
		"COALESCE(SUM(a.total_value), 0) AS total_revenue",
	).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.status": domain.StatusCompleted}).
		Where(squirrel.GtOrEq{"a.appointment_date": start}).
		Where(squirrel.Lt{"a.appointment_date": end}).
		GroupBy("s.id", "s.name").
		OrderBy("total_revenue DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRevenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRevenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	revenue := make([]domain.ServiceRevenue, 0)
	for rows.Next() {
		var row domain.ServiceRevenue
		if err := rows.Scan(&row.ServiceID, &row.ServiceName, &row.AppointmentCount, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("%w: ServiceRevenue - scan row: %v", ErrScanRow, err)
		}
		revenue = append(revenue, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ServiceRevenue - rows error: %v", ErrScanRow, err)
	}

	return revenue, nil
}
