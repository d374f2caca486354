package models

import (
	"time"

	"github.com/barberhq/scheduling-service/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // длительность в минутах
}

// UpdateServiceRequest запрос на частичное обновление услуги.
// nil означает "поле не передано"
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(svc *domain.Service) *ServiceResponse {
	if svc == nil {
		return nil
	}

	return &ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		Duration:    svc.Duration,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		if item := FromDomainService(svc); item != nil {
			resp = append(resp, *item)
		}
	}
	return resp
}
