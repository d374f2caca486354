package update_appointment

import (
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Поля проверяются только если переданы: nil означает "не менять".
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.IsEmpty() {
		return ErrNoFields
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional_id must be positive", ErrInvalidInput)
	}

	if req.AppointmentDate != nil && req.AppointmentDate.IsZero() {
		return fmt.Errorf("%w: appointment_date must not be empty", ErrInvalidInput)
	}

	if req.Status != nil && !domain.AppointmentStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
	}

	if req.TotalValue != nil && *req.TotalValue < 0 {
		return fmt.Errorf("%w: total_value must be non-negative", ErrInvalidInput)
	}

	return nil
}
