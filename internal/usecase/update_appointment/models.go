package update_appointment

import (
	"time"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// Request модель запроса на частичное обновление записи.
// nil означает "поле не передано": присутствие поля определяется
// указателем, поэтому переданные пустая строка или ноль применяются
// как есть, а не отбрасываются.
type Request struct {
	ID int64

	ClientName      *string
	ClientPhone     *string
	ServiceID       *int64
	ProfessionalID  *int64
	AppointmentDate *time.Time
	Status          *string
	TotalValue      *float64
}

// IsEmpty возвращает true, если не передано ни одного поля
func (r *Request) IsEmpty() bool {
	return r.ClientName == nil &&
		r.ClientPhone == nil &&
		r.ServiceID == nil &&
		r.ProfessionalID == nil &&
		r.AppointmentDate == nil &&
		r.Status == nil &&
		r.TotalValue == nil
}

// Response модель ответа с обновлённой записью и присоединёнными полями
type Response struct {
	ID              int64
	ClientName      string
	ClientPhone     string
	ServiceID       int64
	ProfessionalID  *int64
	AppointmentDate time.Time
	Status          string
	TotalValue      float64

	ServiceName     string
	ServiceDuration int
	ServicePrice    float64

	ProfessionalName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainDetails конвертирует денормализованное представление в ответ
func FromDomainDetails(d *domain.AppointmentDetails) *Response {
	return &Response{
		ID:               d.ID,
		ClientName:       d.ClientName,
		ClientPhone:      d.ClientPhone,
		ServiceID:        d.ServiceID,
		ProfessionalID:   d.ProfessionalID,
		AppointmentDate:  d.AppointmentDate,
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
