package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhq/scheduling-service/internal/domain"
	appointmentRepo "github.com/barberhq/scheduling-service/internal/infra/storage/appointment"
	"github.com/barberhq/scheduling-service/pkg/ptr"
)

// Моки контрактов

type mockAppointmentRepo struct {
	current   *domain.Appointment
	getErr    error
	conflicts int
	updateErr error
	details   *domain.AppointmentDetails

	updated        *domain.Appointment
	conflictsAsked bool
	lastSlotQuery  domain.SlotQuery
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return m.current, m.getErr
}

func (m *mockAppointmentRepo) Update(_ context.Context, ap *domain.Appointment) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = ap
	return nil
}

func (m *mockAppointmentRepo) CountConflicts(_ context.Context, q domain.SlotQuery) (int, error) {
	m.conflictsAsked = true
	m.lastSlotQuery = q
	return m.conflicts, nil
}

func (m *mockAppointmentRepo) GetDetailsByID(_ context.Context, _ int64) (*domain.AppointmentDetails, error) {
	return m.details, nil
}

type mockServiceRepo struct {
	service *domain.Service
	err     error
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return m.service, m.err
}

type mockProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (m *mockProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return m.professional, m.err
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

var testDate = time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

func currentAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		ClientName:      "João Silva",
		ClientPhone:     "+55 11 98765-4321",
		ServiceID:       1,
		AppointmentDate: testDate,
		Status:          domain.StatusScheduled,
		TotalValue:      50,
	}
}

func newUseCase(ar *mockAppointmentRepo, sr *mockServiceRepo, pr *mockProfessionalRepo) *UseCase {
	return NewUseCase(ar, sr, pr, &mockTxManager{}, nopLogger{})
}

// Тесты

func TestExecute_NoFields(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockServiceRepo{}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), &Request{ID: 7})

	assert.ErrorIs(t, err, ErrNoFields)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	ar := &mockAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	uc := newUseCase(ar, &mockServiceRepo{}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), &Request{ID: 7, ClientName: ptr.Ptr("Maria")})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_EmptyStringApplies(t *testing.T) {
	// Переданная пустая строка применяется, а не игнорируется
	ar := &mockAppointmentRepo{current: currentAppointment(), details: &domain.AppointmentDetails{}}
	uc := newUseCase(ar, &mockServiceRepo{}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), &Request{ID: 7, ClientPhone: ptr.Ptr("")})

	require.NoError(t, err)
	assert.Equal(t, "", ar.updated.ClientPhone)
	// Остальные поля не тронуты
	assert.Equal(t, "João Silva", ar.updated.ClientName)
}

func TestExecute_ServiceChangeRecomputesPrice(t *testing.T) {
	ar := &mockAppointmentRepo{current: currentAppointment(), details: &domain.AppointmentDetails{}}
	sr := &mockServiceRepo{service: &domain.Service{ID: 2, Name: "Barba", Price: 80}}
	uc := newUseCase(ar, sr, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), &Request{ID: 7, ServiceID: ptr.Ptr(int64(2))})

	require.NoError(t, err)
	assert.Equal(t, int64(2), ar.updated.ServiceID)
	assert.Equal(t, float64(80), ar.updated.TotalValue)
}

func TestExecute_ExplicitTotalValueSkipsRecompute(t *testing.T) {
	ar := &mockAppointmentRepo{current: currentAppointment(), details: &domain.AppointmentDetails{}}
	sr := &mockServiceRepo{service: &domain.Service{ID: 2, Price: 80}}
	uc := newUseCase(ar, sr, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:         7,
		ServiceID:  ptr.Ptr(int64(2)),
		TotalValue: ptr.Ptr(65.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 65.0, ar.updated.TotalValue)
}

func TestExecute_DateChangeRechecksSlotExcludingSelf(t *testing.T) {
	ar := &mockAppointmentRepo{current: currentAppointment(), details: &domain.AppointmentDetails{}}
	uc := newUseCase(ar, &mockServiceRepo{}, &mockProfessionalRepo{})

	newDate := testDate.Add(time.Hour)
	_, err := uc.Execute(context.Background(), &Request{ID: 7, AppointmentDate: &newDate})

	require.NoError(t, err)
	assert.True(t, ar.conflictsAsked)
	require.NotNil(t, ar.lastSlotQuery.ExcludeID)
	assert.Equal(t, int64(7), *ar.lastSlotQuery.ExcludeID)
	assert.True(t, ar.lastSlotQuery.Date.Equal(newDate))
}

func TestExecute_UnchangedSlotSkipsCheck(t *testing.T) {
	ar := &mockAppointmentRepo{current: currentAppointment(), details: &domain.AppointmentDetails{}}
	uc := newUseCase(ar, &mockServiceRepo{}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), &Request{ID: 7, Status: ptr.Ptr("completed")})

	require.NoError(t, err)
	assert.False(t, ar.conflictsAsked)
	assert.Equal(t, domain.StatusCompleted, ar.updated.Status)
}

func TestExecute_NewSlotTaken(t *testing.T) {
	ar := &mockAppointmentRepo{current: currentAppointment(), conflicts: 1}
	uc := newUseCase(ar, &mockServiceRepo{}, &mockProfessionalRepo{})

	newDate := testDate.Add(time.Hour)
	_, err := uc.Execute(context.Background(), &Request{ID: 7, AppointmentDate: &newDate})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, ar.updated)
}

func TestExecute_ProfessionalChangeRechecksSlot(t *testing.T) {
	ar := &mockAppointmentRepo{current: currentAppointment(), details: &domain.AppointmentDetails{}}
	pr := &mockProfessionalRepo{professional: &domain.Professional{ID: 3, Status: domain.ProfessionalActive}}
	uc := newUseCase(ar, &mockServiceRepo{}, pr)

	_, err := uc.Execute(context.Background(), &Request{ID: 7, ProfessionalID: ptr.Ptr(int64(3))})

	require.NoError(t, err)
	assert.True(t, ar.conflictsAsked)
	require.NotNil(t, ar.lastSlotQuery.ProfessionalID)
	assert.Equal(t, int64(3), *ar.lastSlotQuery.ProfessionalID)
}

func TestExecute_InvalidStatus(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockServiceRepo{}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), &Request{ID: 7, Status: ptr.Ptr("postponed")})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
