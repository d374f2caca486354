package domain

// Форматы даты и времени
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // YYYY-MM-DDTHH:MM:SS
)

// Ограничения бизнес-валидации
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNameLength             = 255
	MaxDescriptionLength      = 1000
)
