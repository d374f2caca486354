package update_appointment

import (
	"fmt"
	"time"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest тело запроса на частичное обновление записи.
// Отсутствующие поля не меняются; переданные пустые значения применяются
type UpdateAppointmentRequest struct {
	ClientName      *string  `json:"client_name,omitempty"`
	ClientPhone     *string  `json:"client_phone,omitempty"`
	ServiceID       *int64   `json:"service_id,omitempty"`
	ProfessionalID  *int64   `json:"professional_id,omitempty"`
	AppointmentDate *string  `json:"appointment_date,omitempty"` // "2025-10-15T14:30:00"
	Status          *string  `json:"status,omitempty"`
	TotalValue      *float64 `json:"total_value,omitempty"`
}

// ToUseCaseRequest конвертирует тело запроса в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) (*update_appointment.Request, error) {
	req := &update_appointment.Request{
		ID:             id,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		Status:         r.Status,
		TotalValue:     r.TotalValue,
	}

	if r.AppointmentDate != nil {
		date, err := time.Parse(domain.DateTimeFormat, *r.AppointmentDate)
		if err != nil {
			return nil, fmt.Errorf("invalid appointment_date: %w", err)
		}
		req.AppointmentDate = &date
	}

	return req, nil
}

// AppointmentResponse тело ответа с обновлённой записью
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"client_name"`
	ClientPhone     string  `json:"client_phone"`
	ServiceID       int64   `json:"service_id"`
	ProfessionalID  *int64  `json:"professional_id"`
	AppointmentDate string  `json:"appointment_date"`
	Status          string  `json:"status"`
	TotalValue      float64 `json:"total_value"`

	ServiceName      string  `json:"service_name"`
	ServiceDuration  int     `json:"service_duration"`
	ServicePrice     float64 `json:"service_price"`
	ProfessionalName *string `json:"professional_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromUseCaseResponse конвертирует ответ use case в тело ответа
func FromUseCaseResponse(resp *update_appointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		ClientName:       resp.ClientName,
		ClientPhone:      resp.ClientPhone,
		ServiceID:        resp.ServiceID,
		ProfessionalID:   resp.ProfessionalID,
		AppointmentDate:  resp.AppointmentDate.Format(domain.DateTimeFormat),
		Status:           resp.Status,
		TotalValue:       resp.TotalValue,
		ServiceName:      resp.ServiceName,
		ServiceDuration:  resp.ServiceDuration,
		ServicePrice:     resp.ServicePrice,
		ProfessionalName: resp.ProfessionalName,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	}
}
