package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhq/scheduling-service/internal/domain"
)

type mockReportsRepo struct {
	stats          *domain.MonthStats
	dailyRevenue   []domain.DailyRevenue
	serviceRevenue []domain.ServiceRevenue
	called         bool
}

func (m *mockReportsRepo) MonthStats(_ context.Context, _ domain.ReportPeriod) (*domain.MonthStats, error) {
	m.called = true
	return m.stats, nil
}

func (m *mockReportsRepo) MonthlyRevenue(_ context.Context, _ domain.ReportPeriod) ([]domain.DailyRevenue, error) {
	m.called = true
	return m.dailyRevenue, nil
}

func (m *mockReportsRepo) ServiceRevenue(_ context.Context, _ domain.ReportPeriod) ([]domain.ServiceRevenue, error) {
	m.called = true
	return m.serviceRevenue, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var validPeriod = domain.ReportPeriod{Year: 2025, Month: 10}

func TestStats_InvalidPeriod(t *testing.T) {
	repo := &mockReportsRepo{}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name   string
		period domain.ReportPeriod
	}{
		{"zero period", domain.ReportPeriod{}},
		{"missing month", domain.ReportPeriod{Year: 2025}},
		{"month out of range", domain.ReportPeriod{Year: 2025, Month: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Stats(context.Background(), tt.period)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
		})
	}

	assert.False(t, repo.called)
}

func TestStats_Success(t *testing.T) {
	repo := &mockReportsRepo{stats: &domain.MonthStats{
		TotalAppointments:     10,
		CompletedAppointments: 6,
		CancelledAppointments: 2,
		PendingAppointments:   1,
		AverageValue:          52.5,
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Stats(context.Background(), validPeriod)

	require.NoError(t, err)
	assert.Equal(t, 10, resp.TotalAppointments)
	assert.Equal(t, 52.5, resp.AverageValue)
}

func TestMonthlyRevenue_Success(t *testing.T) {
	repo := &mockReportsRepo{dailyRevenue: []domain.DailyRevenue{
		{Day: 3, AppointmentsCount: 2, DailyRevenue: 100},
		{Day: 15, AppointmentsCount: 1, DailyRevenue: 80},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.MonthlyRevenue(context.Background(), validPeriod)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, 3, resp[0].Day)
	assert.Equal(t, float64(100), resp[0].DailyRevenue)
}

func TestMonthlyRevenue_InvalidPeriod(t *testing.T) {
	svc := NewService(&mockReportsRepo{}, nopLogger{})

	_, err := svc.MonthlyRevenue(context.Background(), domain.ReportPeriod{Month: 10})

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestServiceRevenue_Success(t *testing.T) {
	repo := &mockReportsRepo{serviceRevenue: []domain.ServiceRevenue{
		{ServiceID: 1, ServiceName: "Corte de cabelo", AppointmentCount: 4, TotalRevenue: 200},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ServiceRevenue(context.Background(), validPeriod)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Corte de cabelo", resp[0].ServiceName)
	assert.Equal(t, float64(200), resp[0].TotalRevenue)
}

func TestServiceRevenue_InvalidPeriod(t *testing.T) {
	svc := NewService(&mockReportsRepo{}, nopLogger{})

	_, err := svc.ServiceRevenue(context.Background(), domain.ReportPeriod{Year: 2025, Month: 0})

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
