package domain

import "time"

// Service представляет услугу барбершопа
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Duration    int // длительность в минутах

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceUpdate частичное обновление услуги.
// nil означает "поле не передано"; переданное пустое значение применяется
// как есть (маркеры присутствия вместо проверки на пустоту).
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
}

// IsEmpty возвращает true, если не передано ни одного поля
func (u *ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Duration == nil
}
