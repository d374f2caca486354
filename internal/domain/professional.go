package domain

import "time"

// ProfessionalStatus статус мастера
type ProfessionalStatus string

const (
	ProfessionalActive   ProfessionalStatus = "active"
	ProfessionalInactive ProfessionalStatus = "inactive"
)

// IsValid проверяет допустимость статуса мастера
func (s ProfessionalStatus) IsValid() bool {
	return s == ProfessionalActive || s == ProfessionalInactive
}

// Professional представляет мастера барбершопа.
// Мастера не удаляются физически: удаление переводит статус в inactive,
// чтобы исторические записи сохраняли ссылку.
type Professional struct {
	ID     int64
	Name   string
	Email  string
	Phone  string
	Status ProfessionalStatus

	// Список ID услуг, которые выполняет мастер (professional_services)
	ServiceIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если мастер принимает записи
func (p *Professional) IsActive() bool {
	return p.Status == ProfessionalActive
}

// ProfessionalUpdate частичное обновление мастера.
// ServiceIDs != nil означает полную замену набора связанных услуг.
type ProfessionalUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	Status     *ProfessionalStatus
	ServiceIDs []int64
}

// IsEmpty возвращает true, если не передано ни одного поля
func (u *ProfessionalUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.Status == nil && u.ServiceIDs == nil
}
