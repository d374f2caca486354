package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
	serviceRepo "github.com/barberhq/scheduling-service/internal/infra/storage/service"
	"github.com/barberhq/scheduling-service/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		s.logger.Error("Create: repository error for service name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// List получает список всех услуг
func (s *Service) List(ctx context.Context) ([]models.ServiceResponse, error) {
	s.logger.Info("List: fetching all services")

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// Update частично обновляет услугу. Применяются только переданные поля;
// переданные пустые значения применяются как есть
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		s.logger.Warn("Update: no fields provided for service id=%d", id)
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to read updated service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to read updated service: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(svc), nil
}

// Delete удаляет услугу. Услуга с записями не удаляется:
// стоимость в записях — снимок, но сама строка услуги нужна
// для денормализованных выборок и отчётов
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	refs, err := s.appointmentRepo.CountByServiceID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count appointments for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count appointments: %v", ErrInternal, err)
	}
	if refs > 0 {
		s.logger.Warn("Delete: service id=%d is referenced by %d appointments", id, refs)
		return ErrServiceInUse
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

// validateCreateRequest проверяет обязательные поля при создании
func validateCreateRequest(req *models.CreateServiceRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}

// validateUpdateRequest проверяет переданные поля при обновлении
func validateUpdateRequest(req *models.UpdateServiceRequest) error {
	if req.Price != nil && *req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Duration != nil && *req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
