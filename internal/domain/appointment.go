package domain

import "time"

// AppointmentStatus представляет статус записи
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusPending,
	StatusCompleted,
	StatusCancelled,
}

// IsValid проверяет, что статус входит в список допустимых
func (s AppointmentStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Appointment представляет запись клиента в барбершопе
type Appointment struct {
	ID              int64
	ClientName      string
	ClientPhone     string
	ServiceID       int64
	ProfessionalID  *int64
	AppointmentDate time.Time
	Status          AppointmentStatus

	// Снимок цены на момент записи. Не пересчитывается при изменении
	// цены услуги, чтобы сохранить историческую стоимость.
	TotalValue float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled возвращает true, если запись отменена
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsActive возвращает true, если запись занимает слот (не отменена)
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// AppointmentDetails запись вместе с присоединёнными отображаемыми
// полями услуги и мастера (денормализованное представление для чтения)
type AppointmentDetails struct {
	Appointment

	ServiceName        string
	ServiceDescription string
	ServicePrice       float64
	ServiceDuration    int

	ProfessionalName *string
}

// SlotQuery параметры проверки занятости слота.
// Слотом считается точная метка времени appointment_date; если указан
// мастер, конфликт ищется только среди его записей, иначе — по всем
// записям на этот момент времени (глобальная блокировка слота).
type SlotQuery struct {
	Date           time.Time
	ProfessionalID *int64
	ExcludeID      *int64 // исключить запись при проверке на обновлении
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	Date           *time.Time // точная календарная дата (без времени)
	ProfessionalID *int64
}
