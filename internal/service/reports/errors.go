package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном отчётном периоде
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
