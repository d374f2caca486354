package professionals

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
	professionalRepo "github.com/barberhq/scheduling-service/internal/infra/storage/professional"
	"github.com/barberhq/scheduling-service/internal/service/professionals/models"
)

// Service сервис мастеров
type Service struct {
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Create создает мастера вместе со связями на услуги.
// Вставка мастера и связей выполняется в одной транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: creating professional name=%q, email=%q", req.Name, req.Email)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	status := domain.ProfessionalActive
	if req.Status != nil {
		status = domain.ProfessionalStatus(*req.Status)
	}

	exists, err := s.professionalRepo.EmailExists(ctx, req.Email, nil)
	if err != nil {
		s.logger.Error("Create: failed to check email %q: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - failed to check email: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: email %q is already in use", req.Email)
		return nil, ErrEmailTaken
	}

	var created *domain.Professional

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = s.professionalRepo.Create(txCtx, &domain.Professional{
			Name:   req.Name,
			Email:  req.Email,
			Phone:  req.Phone,
			Status: status,
		})
		if err != nil {
			// Уникальный индекс email — страховка от гонки двух
			// одновременных созданий с одним адресом
			if errors.Is(err, professionalRepo.ErrEmailTaken) {
				s.logger.Warn("Create: email %q taken at insert", req.Email)
				return ErrEmailTaken
			}
			s.logger.Error("Create: repository error for professional name=%q: %v", req.Name, err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		if len(req.Services) > 0 {
			if err := s.professionalRepo.ReplaceServices(txCtx, created.ID, req.Services); err != nil {
				s.logger.Error("Create: failed to link services for professional id=%d: %v", created.ID, err)
				return fmt.Errorf("%w: Create - failed to link services: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created.ServiceIDs = req.Services

	s.logger.Info("Create: successfully created professional id=%d", created.ID)
	return models.FromDomainProfessional(created), nil
}

// GetByID получает мастера по ID вместе со списком его услуг
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetByID: fetching professional id=%d", id)

	p, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetByID: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetByID: repository error for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessional(p), nil
}

// List получает список всех мастеров, включая неактивных
func (s *Service) List(ctx context.Context) ([]models.ProfessionalResponse, error) {
	s.logger.Info("List: fetching all professionals")

	list, err := s.professionalRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d professionals", len(list))
	return models.FromDomainProfessionalList(list), nil
}

// ListActive получает список только активных мастеров
func (s *Service) ListActive(ctx context.Context) ([]models.ProfessionalResponse, error) {
	s.logger.Info("ListActive: fetching active professionals")

	list, err := s.professionalRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActive: successfully fetched %d professionals", len(list))
	return models.FromDomainProfessionalList(list), nil
}

// Update частично обновляет мастера. Смена набора услуг и полей строки
// выполняется в одной транзакции: частичная замена связей невозможна
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Update: updating professional id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: no fields provided for professional id=%d", id)
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for professional id=%d: %v", id, err)
		return nil, err
	}

	// Смена email проверяется на уникальность, исключая самого мастера
	if req.Email != nil {
		exists, err := s.professionalRepo.EmailExists(ctx, *req.Email, &id)
		if err != nil {
			s.logger.Error("Update: failed to check email %q: %v", *req.Email, err)
			return nil, fmt.Errorf("%w: Update - failed to check email: %v", ErrInternal, err)
		}
		if exists {
			s.logger.Warn("Update: email %q is already in use by another professional", *req.Email)
			return nil, ErrEmailTaken
		}
	}

	update := domain.ProfessionalUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		ServiceIDs: req.Services,
	}
	if req.Status != nil {
		status := domain.ProfessionalStatus(*req.Status)
		update.Status = &status
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		hasRowFields := update.Name != nil || update.Email != nil ||
			update.Phone != nil || update.Status != nil

		if hasRowFields {
			if err := s.professionalRepo.Update(txCtx, id, update); err != nil {
				if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
					s.logger.Warn("Update: professional id=%d not found", id)
					return ErrProfessionalNotFound
				}
				if errors.Is(err, professionalRepo.ErrEmailTaken) {
					s.logger.Warn("Update: email taken at update for professional id=%d", id)
					return ErrEmailTaken
				}
				s.logger.Error("Update: repository error for professional id=%d: %v", id, err)
				return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
		} else {
			// Обновляются только связи — существование строки
			// проверяется отдельно
			if _, err := s.professionalRepo.GetByID(txCtx, id); err != nil {
				if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
					s.logger.Warn("Update: professional id=%d not found", id)
					return ErrProfessionalNotFound
				}
				s.logger.Error("Update: repository error for professional id=%d: %v", id, err)
				return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
		}

		if req.Services != nil {
			if err := s.professionalRepo.ReplaceServices(txCtx, id, req.Services); err != nil {
				s.logger.Error("Update: failed to replace services for professional id=%d: %v", id, err)
				return fmt.Errorf("%w: Update - failed to replace services: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to read updated professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to read updated professional: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated professional id=%d", id)
	return models.FromDomainProfessional(p), nil
}

// Delete деактивирует мастера (мягкое удаление).
// Строка и связи сохраняются, чтобы исторические записи не теряли ссылку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deactivating professional id=%d", id)

	if err := s.professionalRepo.SetStatus(ctx, id, domain.ProfessionalInactive); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Delete: professional id=%d not found", id)
			return ErrProfessionalNotFound
		}
		s.logger.Error("Delete: repository error for professional id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deactivated professional id=%d", id)
	return nil
}

// validateCreateRequest проверяет обязательные поля при создании
func validateCreateRequest(req *models.CreateProfessionalRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.Status != nil && !domain.ProfessionalStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
	}
	return nil
}

// validateUpdateRequest проверяет переданные поля при обновлении
func validateUpdateRequest(req *models.UpdateProfessionalRequest) error {
	if req.Status != nil && !domain.ProfessionalStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
	}
	return nil
}
