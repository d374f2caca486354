package update_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrNoFields возвращается, когда не передано ни одного поля
	ErrNoFields = errors.New("update_appointment: at least one field is required")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrServiceNotFound возвращается, когда новая услуга не найдена
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrProfessionalNotFound возвращается, когда новый мастер не найден
	// или переведён в статус inactive
	ErrProfessionalNotFound = errors.New("update_appointment: professional not found or inactive")

	// ErrSlotNotAvailable возвращается, когда новый слот уже занят
	ErrSlotNotAvailable = errors.New("update_appointment: time slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
