package create_appointment

import (
	"fmt"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: client_phone is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id is required", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional_id must be positive", ErrInvalidInput)
	}

	if req.AppointmentDate.IsZero() {
		return fmt.Errorf("%w: appointment_date is required", ErrInvalidInput)
	}

	if req.Status != nil && !domain.AppointmentStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
	}

	if req.TotalValue != nil && *req.TotalValue < 0 {
		return fmt.Errorf("%w: total_value must be non-negative", ErrInvalidInput)
	}

	return nil
}
