package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
	appointmentRepo "github.com/barberhq/scheduling-service/internal/infra/storage/appointment"
	"github.com/barberhq/scheduling-service/internal/service/appointments/models"
)

// Service сервис для чтения и удаления записей.
// Создание и обновление живут в отдельных use case, потому что
// требуют сериализуемых транзакций и проверки занятости слота.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID вместе с полями услуги и мастера
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	details, err := s.appointmentRepo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainDetails(details), nil
}

// List получает список записей с опциональными фильтрами по дате и мастеру
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) ([]models.AppointmentResponse, error) {
	s.logger.Info("List: fetching appointments, date=%v, professional=%v", req.Date, req.ProfessionalID)

	details, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(details))
	return models.FromDomainDetailsList(details), nil
}

// DaysWithAppointments получает отсортированный список дат за период,
// на которые есть хотя бы одна запись
func (s *Service) DaysWithAppointments(ctx context.Context, req *models.DaysWithAppointmentsRequest) ([]string, error) {
	s.logger.Info("DaysWithAppointments: fetching days from %s to %s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		s.logger.Warn("DaysWithAppointments: start and end dates are required")
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	dates, err := s.appointmentRepo.DistinctDates(ctx, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("DaysWithAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: DaysWithAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DaysWithAppointments: found %d days with appointments", len(dates))
	return models.FromDomainDates(dates), nil
}

// Delete удаляет запись по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
