package googlecalendar

import "errors"

var (
	// ErrUpstream возвращается, когда Google Calendar недоступен или ответил ошибкой
	ErrUpstream = errors.New("googlecalendar client: upstream failure")

	// ErrInvalidResponse возвращается при некорректном ответе от Google Calendar
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
