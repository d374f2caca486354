package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
	appointmentRepo "github.com/barberhq/scheduling-service/internal/infra/storage/appointment"
	professionalRepo "github.com/barberhq/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/barberhq/scheduling-service/internal/infra/storage/service"
)

// UseCase use case для частичного обновления записи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case обновления записи.
// Чтение, проверка нового слота и сохранение выполняются в одной
// сериализуемой транзакции: перенос записи на занятый слот невозможен
// даже при конкурентных запросах.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Новая услуга, если указана, должна существовать.
	// Её цена нужна для пересчёта стоимости
	var newService *domain.Service
	if req.ServiceID != nil {
		svc, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		newService = svc
	}

	// 3. Новый мастер, если указан, должен существовать и быть активным
	if req.ProfessionalID != nil {
		prof, err := uc.professionalRepo.GetByID(ctx, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				uc.logger.Warn("UpdateAppointment: professional id=%d not found", *req.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get professional id=%d: %v", *req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}
		if !prof.IsActive() {
			uc.logger.Warn("UpdateAppointment: professional id=%d is inactive", *req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
	}

	// 4. Чтение текущей записи, слияние и сохранение в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		merged := uc.merge(current, req, newService)

		// Перенос на другой слот или смена мастера требуют повторной
		// проверки занятости, исключая саму запись
		if uc.slotChanged(current, merged) {
			conflicts, err := uc.appointmentRepo.CountConflicts(txCtx, domain.SlotQuery{
				Date:           merged.AppointmentDate,
				ProfessionalID: merged.ProfessionalID,
				ExcludeID:      &merged.ID,
			})
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to count conflicts: %v", err)
				return fmt.Errorf("%w: failed to count conflicts: %v", ErrInternal, err)
			}
			if conflicts > 0 {
				uc.logger.Warn("UpdateAppointment: slot %s is taken (%d conflicting)",
					merged.AppointmentDate.Format(domain.DateTimeFormat), conflicts)
				return ErrSlotNotAvailable
			}
		}

		if err := uc.appointmentRepo.Update(txCtx, merged); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateAppointment: slot %s taken at update",
					merged.AppointmentDate.Format(domain.DateTimeFormat))
				return ErrSlotNotAvailable
			}
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 5. Читаем обновлённую запись вместе с полями услуги и мастера
	details, err := uc.appointmentRepo.GetDetailsByID(ctx, req.ID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to read updated appointment id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to read updated appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", req.ID)

	return FromDomainDetails(details), nil
}

// merge применяет переданные поля поверх текущей записи.
// Смена услуги без явной стоимости пересчитывает стоимость
// по цене новой услуги.
func (uc *UseCase) merge(current *domain.Appointment, req *Request, newService *domain.Service) *domain.Appointment {
	merged := *current

	if req.ClientName != nil {
		merged.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		merged.ClientPhone = *req.ClientPhone
	}
	if req.ServiceID != nil {
		merged.ServiceID = *req.ServiceID
		if req.TotalValue == nil && newService != nil {
			merged.TotalValue = newService.Price
		}
	}
	if req.ProfessionalID != nil {
		merged.ProfessionalID = req.ProfessionalID
	}
	if req.AppointmentDate != nil {
		merged.AppointmentDate = *req.AppointmentDate
	}
	if req.Status != nil {
		merged.Status = domain.AppointmentStatus(*req.Status)
	}
	if req.TotalValue != nil {
		merged.TotalValue = *req.TotalValue
	}

	return &merged
}

// slotChanged возвращает true, если изменились дата или мастер
func (uc *UseCase) slotChanged(current, merged *domain.Appointment) bool {
	if !current.AppointmentDate.Equal(merged.AppointmentDate) {
		return true
	}

	switch {
	case current.ProfessionalID == nil && merged.ProfessionalID == nil:
		return false
	case current.ProfessionalID == nil || merged.ProfessionalID == nil:
		return true
	default:
		return *current.ProfessionalID != *merged.ProfessionalID
	}
}
