package domain

// MonthStats сводная статистика по записям за календарный месяц.
// Счётчики считаются по всем статусам; AverageValue усредняет total_value
// также по всем статусам месяца, включая отменённые записи.
type MonthStats struct {
	TotalAppointments     int
	CompletedAppointments int
	CancelledAppointments int
	PendingAppointments   int
	AverageValue          float64
}

// DailyRevenue выручка за один день месяца (только завершённые записи)
type DailyRevenue struct {
	Day               int
	AppointmentsCount int
	DailyRevenue      float64
}

// ServiceRevenue выручка по услуге за месяц (только завершённые записи)
type ServiceRevenue struct {
	ServiceID        int64
	ServiceName      string
	AppointmentCount int
	TotalRevenue     float64
}

// ReportPeriod календарный месяц отчёта
type ReportPeriod struct {
	Year  int
	Month int
}

// IsValid проверяет, что период задан корректно
func (p ReportPeriod) IsValid() bool {
	return p.Year >= 1 && p.Month >= 1 && p.Month <= 12
}
