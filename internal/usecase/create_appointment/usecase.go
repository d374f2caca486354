package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
	appointmentRepo "github.com/barberhq/scheduling-service/internal/infra/storage/appointment"
	professionalRepo "github.com/barberhq/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/barberhq/scheduling-service/internal/infra/storage/service"
)

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи.
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции: два конкурентных запроса на один слот не смогут оба
// пройти проверку (закрывает гонку check-then-act).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%q, service=%d, professional=%v, date=%s",
		req.ClientName, req.ServiceID, req.ProfessionalID, req.AppointmentDate.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга должна существовать; её текущая цена — снимок стоимости
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Мастер, если указан, должен существовать и быть активным
	if req.ProfessionalID != nil {
		prof, err := uc.professionalRepo.GetByID(ctx, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				uc.logger.Warn("CreateAppointment: professional id=%d not found", *req.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", *req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}
		if !prof.IsActive() {
			uc.logger.Warn("CreateAppointment: professional id=%d is inactive", *req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
	}

	// 4. Стоимость: переданное значение приоритетно, иначе снимок цены услуги
	totalValue := svc.Price
	if req.TotalValue != nil {
		totalValue = *req.TotalValue
	}

	status := domain.StatusScheduled
	if req.Status != nil {
		status = domain.AppointmentStatus(*req.Status)
	}

	var created *domain.Appointment

	// 5. Проверка слота и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflicts, err := uc.appointmentRepo.CountConflicts(txCtx, domain.SlotQuery{
			Date:           req.AppointmentDate,
			ProfessionalID: req.ProfessionalID,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count conflicts: %v", err)
			return fmt.Errorf("%w: failed to count conflicts: %v", ErrInternal, err)
		}
		if conflicts > 0 {
			uc.logger.Warn("CreateAppointment: slot %s is taken (%d conflicting)",
				req.AppointmentDate.Format(domain.DateTimeFormat), conflicts)
			return ErrSlotNotAvailable
		}

		ap := &domain.Appointment{
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ServiceID:       req.ServiceID,
			ProfessionalID:  req.ProfessionalID,
			AppointmentDate: req.AppointmentDate,
			Status:          status,
			TotalValue:      totalValue,
		}

		created, err = uc.appointmentRepo.Create(txCtx, ap)
		if err != nil {
			// Уникальный индекс слота — страховка на случай гонки,
			// которую не поймала проверка выше
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s taken at insert",
					req.AppointmentDate.Format(domain.DateTimeFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Читаем созданную запись вместе с полями услуги и мастера
	details, err := uc.appointmentRepo.GetDetailsByID(ctx, created.ID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to read created appointment id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to read created appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)

	return FromDomainDetails(details), nil
}
