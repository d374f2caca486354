package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhq/scheduling-service/internal/domain"
	appointmentRepo "github.com/barberhq/scheduling-service/internal/infra/storage/appointment"
	professionalRepo "github.com/barberhq/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/barberhq/scheduling-service/internal/infra/storage/service"
	"github.com/barberhq/scheduling-service/pkg/ptr"
)

// Моки контрактов

type mockAppointmentRepo struct {
	conflicts    int
	conflictsErr error
	createErr    error
	created      *domain.Appointment
	details      *domain.AppointmentDetails

	lastSlotQuery domain.SlotQuery
}

func (m *mockAppointmentRepo) Create(_ context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *ap
	created.ID = 1
	m.created = &created
	return &created, nil
}

func (m *mockAppointmentRepo) CountConflicts(_ context.Context, q domain.SlotQuery) (int, error) {
	m.lastSlotQuery = q
	return m.conflicts, m.conflictsErr
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

// mockTxManager выполняет fn без реальной транзакции
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

func validRequest() *Request {
	return &Request{
		ClientName:      "João Silva",
		ClientPhone:     "+55 11 98765-4321",
		ServiceID:       1,
		AppointmentDate: testDate,
	}
}

func testService() *domain.Service {
	return &domain.Service{ID: 1, Name: "Corte de cabelo", Price: 50, Duration: 30}
}

func newUseCase(ar *mockAppointmentRepo, sr *mockServiceRepo, pr *mockProfessionalRepo) *UseCase {
	return NewUseCase(ar, sr, pr, &mockTxManager{}, nopLogger{})
}

// Тесты

func TestExecute_Success_SnapshotsServicePrice(t *testing.T) {
	ar := &mockAppointmentRepo{
		details: &domain.AppointmentDetails{
			Appointment: domain.Appointment{ID: 1, TotalValue: 50},
			ServiceName: "Corte de cabelo",
		},
	}
	uc := newUseCase(ar, &mockServiceRepo{service: testService()}, &mockProfessionalRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	// Стоимость — снимок цены услуги
	assert.Equal(t, float64(50), ar.created.TotalValue)
	assert.Equal(t, domain.StatusScheduled, ar.created.Status)
}

func TestExecute_ExplicitTotalValueWins(t *testing.T) {
	ar := &mockAppointmentRepo{details: &domain.AppointmentDetails{}}
	uc := newUseCase(ar, &mockServiceRepo{service: testService()}, &mockProfessionalRepo{})

	req := validRequest()
	req.TotalValue = ptr.Ptr(35.0)

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 35.0, ar.created.TotalValue)
}

func TestExecute_SlotTaken(t *testing.T) {
	ar := &mockAppointmentRepo{conflicts: 1}
	uc := newUseCase(ar, &mockServiceRepo{service: testService()}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, ar.created)
}

func TestExecute_SlotTakenAtInsert(t *testing.T) {
	// Гонку, прошедшую мимо проверки, ловит уникальный индекс
	ar := &mockAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newUseCase(ar, &mockServiceRepo{service: testService()}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockServiceRepo{err: serviceRepo.ErrServiceNotFound}, &mockProfessionalRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	uc := newUseCase(
		&mockAppointmentRepo{},
		&mockServiceRepo{service: testService()},
		&mockProfessionalRepo{err: professionalRepo.ErrProfessionalNotFound},
	)

	req := validRequest()
	req.ProfessionalID = ptr.Ptr(int64(3))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_InactiveProfessionalRejected(t *testing.T) {
	uc := newUseCase(
		&mockAppointmentRepo{},
		&mockServiceRepo{service: testService()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 3, Status: domain.ProfessionalInactive}},
	)

	req := validRequest()
	req.ProfessionalID = ptr.Ptr(int64(3))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ProfessionalScopedConflictCheck(t *testing.T) {
	ar := &mockAppointmentRepo{details: &domain.AppointmentDetails{}}
	uc := newUseCase(
		ar,
		&mockServiceRepo{service: testService()},
		&mockProfessionalRepo{professional: &domain.Professional{ID: 3, Status: domain.ProfessionalActive}},
	)

	req := validRequest()
	req.ProfessionalID = ptr.Ptr(int64(3))

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, ar.lastSlotQuery.ProfessionalID)
	assert.Equal(t, int64(3), *ar.lastSlotQuery.ProfessionalID)
	assert.True(t, ar.lastSlotQuery.Date.Equal(testDate))
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockServiceRepo{service: testService()}, &mockProfessionalRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing client name", func(r *Request) { r.ClientName = "" }},
		{"missing client phone", func(r *Request) { r.ClientPhone = "" }},
		{"missing service", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.AppointmentDate = time.Time{} }},
		{"unknown status", func(r *Request) { r.Status = ptr.Ptr("postponed") }},
		{"negative total value", func(r *Request) { r.TotalValue = ptr.Ptr(-1.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
