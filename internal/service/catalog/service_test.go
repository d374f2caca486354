package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhq/scheduling-service/internal/domain"
	serviceRepo "github.com/barberhq/scheduling-service/internal/infra/storage/service"
	"github.com/barberhq/scheduling-service/internal/service/catalog/models"
	"github.com/barberhq/scheduling-service/pkg/ptr"
)

// Моки контрактов

type mockServiceRepo struct {
	service   *domain.Service
	getErr    error
	updateErr error
	deleteErr error

	lastUpdate domain.ServiceUpdate
	deleted    bool
}

func (m *mockServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	created := *svc
	created.ID = 1
	return &created, nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return m.service, m.getErr
}

func (m *mockServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	return []*domain.Service{m.service}, nil
}

func (m *mockServiceRepo) Update(_ context.Context, _ int64, update domain.ServiceUpdate) error {
	m.lastUpdate = update
	return m.updateErr
}

func (m *mockServiceRepo) Delete(_ context.Context, _ int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = true
	return nil
}

type mockAppointmentRepo struct {
	refs int
}

func (m *mockAppointmentRepo) CountByServiceID(_ context.Context, _ int64) (int, error) {
	return m.refs, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService() *domain.Service {
	return &domain.Service{ID: 1, Name: "Corte de cabelo", Description: "Corte masculino", Price: 50, Duration: 30}
}

// Тесты

func TestCreate_Success(t *testing.T) {
	svc := NewService(&mockServiceRepo{}, &mockAppointmentRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:        "Corte de cabelo",
		Description: "Corte masculino",
		Price:       50,
		Duration:    30,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Corte de cabelo", resp.Name)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewService(&mockServiceRepo{}, &mockAppointmentRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"missing name", models.CreateServiceRequest{Description: "d", Price: 50, Duration: 30}},
		{"missing description", models.CreateServiceRequest{Name: "n", Price: 50, Duration: 30}},
		{"zero price", models.CreateServiceRequest{Name: "n", Description: "d", Duration: 30}},
		{"zero duration", models.CreateServiceRequest{Name: "n", Description: "d", Price: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_NoFields(t *testing.T) {
	svc := NewService(&mockServiceRepo{}, &mockAppointmentRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &mockServiceRepo{service: testService()}
	svc := NewService(repo, &mockAppointmentRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		Price: ptr.Ptr(75.0),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastUpdate.Price)
	assert.Equal(t, 75.0, *repo.lastUpdate.Price)
	assert.Nil(t, repo.lastUpdate.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockServiceRepo{updateErr: serviceRepo.ErrServiceNotFound}
	svc := NewService(repo, &mockAppointmentRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{Name: ptr.Ptr("Barba")})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := &mockServiceRepo{service: testService()}
	svc := NewService(repo, &mockAppointmentRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, repo.deleted)
}

func TestDelete_RefusedWhileReferenced(t *testing.T) {
	repo := &mockServiceRepo{service: testService()}
	svc := NewService(repo, &mockAppointmentRepo{refs: 2}, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrServiceInUse)
	assert.False(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockServiceRepo{deleteErr: serviceRepo.ErrServiceNotFound}
	svc := NewService(repo, &mockAppointmentRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
