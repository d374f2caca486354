package professionals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhq/scheduling-service/internal/domain"
	professionalRepo "github.com/barberhq/scheduling-service/internal/infra/storage/professional"
	"github.com/barberhq/scheduling-service/internal/service/professionals/models"
	"github.com/barberhq/scheduling-service/pkg/ptr"
)

// Моки контрактов

type mockProfessionalRepo struct {
	professional *domain.Professional
	getErr       error
	emailExists  bool
	createErr    error
	updateErr    error
	statusErr    error

	lastEmailExclude *int64
	lastStatus       domain.ProfessionalStatus
	replacedServices []int64
	replaceCalled    bool
}

func (m *mockProfessionalRepo) Create(_ context.Context, p *domain.Professional) (*domain.Professional, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *p
	created.ID = 3
	return &created, nil
}

func (m *mockProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return m.professional, m.getErr
}

func (m *mockProfessionalRepo) List(_ context.Context, onlyActive bool) ([]*domain.Professional, error) {
	if onlyActive && !m.professional.IsActive() {
		return nil, nil
	}
	return []*domain.Professional{m.professional}, nil
}

func (m *mockProfessionalRepo) EmailExists(_ context.Context, _ string, excludeID *int64) (bool, error) {
	m.lastEmailExclude = excludeID
	return m.emailExists, nil
}

func (m *mockProfessionalRepo) Update(_ context.Context, _ int64, _ domain.ProfessionalUpdate) error {
	return m.updateErr
}

func (m *mockProfessionalRepo) SetStatus(_ context.Context, _ int64, status domain.ProfessionalStatus) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.lastStatus = status
	return nil
}

func (m *mockProfessionalRepo) ReplaceServices(_ context.Context, _ int64, serviceIDs []int64) error {
	m.replaceCalled = true
	m.replacedServices = serviceIDs
	return nil
}

// mockTxManager выполняет fn без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testProfessional() *domain.Professional {
	return &domain.Professional{
		ID:         3,
		Name:       "Carlos Souza",
		Email:      "carlos@barber.com",
		Phone:      "+55 11 91234-5678",
		Status:     domain.ProfessionalActive,
		ServiceIDs: []int64{1, 2},
	}
}

func newTestService(repo *mockProfessionalRepo) *Service {
	return NewService(repo, &mockTxManager{}, nopLogger{})
}

// Тесты

func TestCreate_Success(t *testing.T) {
	repo := &mockProfessionalRepo{}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{
		Name:     "Carlos Souza",
		Email:    "carlos@barber.com",
		Phone:    "+55 11 91234-5678",
		Services: []int64{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.True(t, resp.Available)
	assert.Equal(t, []int64{1, 2}, resp.Services)
	assert.Equal(t, []int64{1, 2}, repo.replacedServices)
}

func TestCreate_PresentationProfile(t *testing.T) {
	svc := newTestService(&mockProfessionalRepo{})

	resp, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{
		Name:  "Carlos Souza",
		Email: "carlos@barber.com",
		Phone: "+55 11 91234-5678",
	})

	require.NoError(t, err)
	assert.Equal(t, "Barbeiro", resp.Specialty)
	assert.Equal(t, "5+ anos", resp.Experience)
	assert.Equal(t, 4.5, resp.Rating)
	assert.Equal(t, []int64{}, resp.Services)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := newTestService(&mockProfessionalRepo{emailExists: true})

	_, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{
		Name:  "Carlos Souza",
		Email: "carlos@barber.com",
		Phone: "+55 11 91234-5678",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreate_DuplicateEmailAtInsert(t *testing.T) {
	svc := newTestService(&mockProfessionalRepo{createErr: professionalRepo.ErrEmailTaken})

	_, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{
		Name:  "Carlos Souza",
		Email: "carlos@barber.com",
		Phone: "+55 11 91234-5678",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newTestService(&mockProfessionalRepo{})

	_, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{Name: "Carlos"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NoFields(t *testing.T) {
	svc := newTestService(&mockProfessionalRepo{})

	_, err := svc.Update(context.Background(), 3, &models.UpdateProfessionalRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_EmailCheckExcludesSelf(t *testing.T) {
	repo := &mockProfessionalRepo{professional: testProfessional()}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 3, &models.UpdateProfessionalRequest{
		Email: ptr.Ptr("novo@barber.com"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastEmailExclude)
	assert.Equal(t, int64(3), *repo.lastEmailExclude)
}

func TestUpdate_EmailTakenByOther(t *testing.T) {
	repo := &mockProfessionalRepo{professional: testProfessional(), emailExists: true}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 3, &models.UpdateProfessionalRequest{
		Email: ptr.Ptr("taken@barber.com"),
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdate_ServicesReplacedWithRow(t *testing.T) {
	repo := &mockProfessionalRepo{professional: testProfessional()}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 3, &models.UpdateProfessionalRequest{
		Name:     ptr.Ptr("Carlos S."),
		Services: []int64{2, 5},
	})

	require.NoError(t, err)
	assert.True(t, repo.replaceCalled)
	assert.Equal(t, []int64{2, 5}, repo.replacedServices)
}

func TestUpdate_ServicesOnly(t *testing.T) {
	repo := &mockProfessionalRepo{professional: testProfessional()}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 3, &models.UpdateProfessionalRequest{
		Services: []int64{},
	})

	require.NoError(t, err)
	assert.True(t, repo.replaceCalled)
	assert.Empty(t, repo.replacedServices)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockProfessionalRepo{updateErr: professionalRepo.ErrProfessionalNotFound}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 3, &models.UpdateProfessionalRequest{
		Name: ptr.Ptr("Carlos S."),
	})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestDelete_SoftDeletesToInactive(t *testing.T) {
	repo := &mockProfessionalRepo{}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, domain.ProfessionalInactive, repo.lastStatus)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&mockProfessionalRepo{statusErr: professionalRepo.ErrProfessionalNotFound})

	err := svc.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
