package models

import "github.com/barberhq/scheduling-service/internal/domain"

// Response модели

// StatsResponse агрегированная статистика записей за месяц
type StatsResponse struct {
	TotalAppointments     int     `json:"total_appointments"`
	CompletedAppointments int     `json:"completed_appointments"`
	CancelledAppointments int     `json:"cancelled_appointments"`
	PendingAppointments   int     `json:"pending_appointments"`
	AverageValue          float64 `json:"average_value"`
}

// DailyRevenueResponse выручка за один день месяца
type DailyRevenueResponse struct {
	Day               int     `json:"day"`
	AppointmentsCount int     `json:"appointments_count"`
	DailyRevenue      float64 `json:"daily_revenue"`
}

// ServiceRevenueResponse выручка по одной услуге за месяц
type ServiceRevenueResponse struct {
	ServiceID        int64   `json:"service_id"`
	ServiceName      string  `json:"service_name"`
	AppointmentCount int     `json:"appointment_count"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// Методы конвертации

// FromDomainStats конвертирует domain модель в DTO
func FromDomainStats(s *domain.MonthStats) *StatsResponse {
	if s == nil {
		return nil
	}

	return &StatsResponse{
		TotalAppointments:     s.TotalAppointments,
		CompletedAppointments: s.CompletedAppointments,
		CancelledAppointments: s.CancelledAppointments,
		PendingAppointments:   s.PendingAppointments,
		AverageValue:          s.AverageValue,
	}
}

// FromDomainDailyRevenue конвертирует список domain моделей в DTO
func FromDomainDailyRevenue(rows []domain.DailyRevenue) []DailyRevenueResponse {
	resp := make([]DailyRevenueResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, DailyRevenueResponse{
			Day:               row.Day,
			AppointmentsCount: row.AppointmentsCount,
			DailyRevenue:      row.DailyRevenue,
		})
	}
	return resp
}

// FromDomainServiceRevenue конвертирует список domain моделей в DTO
func FromDomainServiceRevenue(rows []domain.ServiceRevenue) []ServiceRevenueResponse {
	resp := make([]ServiceRevenueResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, ServiceRevenueResponse{
			ServiceID:        row.ServiceID,
			ServiceName:      row.ServiceName,
			AppointmentCount: row.AppointmentCount,
			TotalRevenue:     row.TotalRevenue,
		})
	}
	return resp
}
