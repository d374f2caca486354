package models

import "github.com/barberhq/scheduling-service/internal/domain"

// Презентационные поля профиля мастера. Анкеты мастеров пока не
// заполняются, витрина показывает одинаковый профиль для всех.
const (
	defaultSpecialty  = "Barbeiro"
	defaultExperience = "5+ anos"
	defaultRating     = 4.5
)

// Request модели

// CreateProfessionalRequest запрос на создание мастера
type CreateProfessionalRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Status   *string `json:"status,omitempty"`   // по умолчанию active
	Services []int64 `json:"services,omitempty"` // ID связанных услуг
}

// UpdateProfessionalRequest запрос на частичное обновление мастера.
// nil означает "поле не передано"; Services != nil — полная замена
// набора связанных услуг
type UpdateProfessionalRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Status   *string `json:"status,omitempty"`
	Services []int64 `json:"services,omitempty"`
}

// IsEmpty возвращает true, если не передано ни одного поля
func (r *UpdateProfessionalRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil &&
		r.Status == nil && r.Services == nil
}

// Response модели

// ProfessionalResponse ответ с данными мастера и витринным профилем
type ProfessionalResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`

	Specialty  string  `json:"specialty"`
	Experience string  `json:"experience"`
	Rating     float64 `json:"rating"`
	Available  bool    `json:"available"`

	Services []int64 `json:"services"`
}

// Методы конвертации

// FromDomainProfessional конвертирует domain модель в DTO
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}

	services := p.ServiceIDs
	if services == nil {
		services = []int64{}
	}

	return &ProfessionalResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Status:     string(p.Status),
		Specialty:  defaultSpecialty,
		Experience: defaultExperience,
		Rating:     defaultRating,
		Available:  p.IsActive(),
		Services:   services,
	}
}

// FromDomainProfessionalList конвертирует список domain моделей в DTO
func FromDomainProfessionalList(list []*domain.Professional) []ProfessionalResponse {
	resp := make([]ProfessionalResponse, 0, len(list))
	for _, p := range list {
		if item := FromDomainProfessional(p); item != nil {
			resp = append(resp, *item)
		}
	}
	return resp
}
