package models

import (
	"time"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Date           *time.Time // точная дата (опционально)
	ProfessionalID *int64     // фильтр по мастеру (опционально)
}

// DaysWithAppointmentsRequest запрос на получение дней с записями за период
type DaysWithAppointmentsRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response модели

// AppointmentResponse ответ с данными записи и присоединёнными полями
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"client_name"`
	ClientPhone     string  `json:"client_phone"`
	ServiceID       int64   `json:"service_id"`
	ProfessionalID  *int64  `json:"professional_id"`
	AppointmentDate string  `json:"appointment_date"` // "2025-10-15T14:30:00"
	Status          string  `json:"status"`
	TotalValue      float64 `json:"total_value"`

	// Денормализованные данные услуги и мастера
	ServiceName      string  `json:"service_name"`
	ServiceDuration  int     `json:"service_duration"`
	ServicePrice     float64 `json:"service_price"`
	ProfessionalName *string `json:"professional_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Методы конвертации

// FromDomainDetails конвертирует domain модель в DTO
func FromDomainDetails(d *domain.AppointmentDetails) *AppointmentResponse {
	if d == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:               d.ID,
		ClientName:       d.ClientName,
		ClientPhone:      d.ClientPhone,
		ServiceID:        d.ServiceID,
		ProfessionalID:   d.ProfessionalID,
		AppointmentDate:  d.AppointmentDate.Format(domain.DateTimeFormat),
		Status:           string(d.Status),
		TotalValue:       d.TotalValue,
		ServiceName:      d.ServiceName,
		ServiceDuration:  d.ServiceDuration,
		ServicePrice:     d.ServicePrice,
		ProfessionalName: d.ProfessionalName,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// FromDomainDetailsList конвертирует список domain моделей в DTO
func FromDomainDetailsList(details []*domain.AppointmentDetails) []AppointmentResponse {
	resp := make([]AppointmentResponse, 0, len(details))
	for _, d := range details {
		if item := FromDomainDetails(d); item != nil {
			resp = append(resp, *item)
		}
	}
	return resp
}

// FromDomainDates конвертирует список дат в список строк "2006-01-02".
// Отдаётся плоским массивом, без обёртки.
func FromDomainDates(dates []time.Time) []string {
	days := make([]string, 0, len(dates))
	for _, d := range dates {
		days = append(days, d.Format(domain.DateFormat))
	}
	return days
}
