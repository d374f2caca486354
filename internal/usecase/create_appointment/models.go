package create_appointment

import (
	"time"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName      string     // имя клиента
	ClientPhone     string     // телефон клиента
	ServiceID       int64      // ID услуги
	ProfessionalID  *int64     // ID мастера (опционально)
	AppointmentDate time.Time  // точная дата и время слота
	Status          *string    // статус (опционально, по умолчанию scheduled)
	TotalValue      *float64   // стоимость (опционально, по умолчанию цена услуги)
}

// Response модель ответа с созданной записью и присоединёнными полями
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
