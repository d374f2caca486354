package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhq/scheduling-service/internal/domain"
	appointmentRepo "github.com/barberhq/scheduling-service/internal/infra/storage/appointment"
	"github.com/barberhq/scheduling-service/internal/service/appointments/models"
	"github.com/barberhq/scheduling-service/pkg/ptr"
)

type mockAppointmentRepo struct {
	details   *domain.AppointmentDetails
	list      []*domain.AppointmentDetails
	dates     []time.Time
	getErr    error
	deleteErr error

	lastFilter domain.AppointmentsFilter
	deleted    bool
}

func (m *mockAppointmentRepo) GetDetailsByID(_ context.Context, _ int64) (*domain.AppointmentDetails, error) {
	return m.details, m.getErr
}

func (m *mockAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	m.lastFilter = filter
	return m.list, nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, _ int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = true
	return nil
}

func (m *mockAppointmentRepo) DistinctDates(_ context.Context, _, _ time.Time) ([]time.Time, error) {
	return m.dates, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

func testDetails() *domain.AppointmentDetails {
	return &domain.AppointmentDetails{
		Appointment: domain.Appointment{
			ID:              1,
			ClientName:      "João Silva",
			ServiceID:       1,
			AppointmentDate: testDate,
			Status:          domain.StatusScheduled,
			TotalValue:      50,
		},
		ServiceName:     "Corte de cabelo",
		ServiceDuration: 30,
		ServicePrice:    50,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{details: testDetails()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-15T14:30:00", resp.AppointmentDate)
	assert.Equal(t, "Corte de cabelo", resp.ServiceName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	repo := &mockAppointmentRepo{list: []*domain.AppointmentDetails{testDetails()}}
	svc := NewService(repo, nopLogger{})

	profID := ptr.Ptr(int64(3))
	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Date:           &testDate,
		ProfessionalID: profID,
	})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	require.NotNil(t, repo.lastFilter.Date)
	assert.True(t, repo.lastFilter.Date.Equal(testDate))
	assert.Equal(t, profID, repo.lastFilter.ProfessionalID)
}

func TestList_EmptyResultIsNotNil(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestDaysWithAppointments_FormatsDates(t *testing.T) {
	repo := &mockAppointmentRepo{dates: []time.Time{
		time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	}}
	svc := NewService(repo, nopLogger{})

	days, err := svc.DaysWithAppointments(context.Background(), &models.DaysWithAppointmentsRequest{
		StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-03", "2025-10-15"}, days)
}

func TestDaysWithAppointments_MissingRange(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	_, err := svc.DaysWithAppointments(context.Background(), &models.DaysWithAppointmentsRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_Success(t *testing.T) {
	repo := &mockAppointmentRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{deleteErr: appointmentRepo.ErrAppointmentNotFound}, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
