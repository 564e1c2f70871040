package create_event

import "errors"

var (
	// ErrInvalidDateTime возвращается, когда дата или время не разбираются
	ErrInvalidDateTime = errors.New("create_event: invalid date/time")

	// ErrSlotUnavailable возвращается, когда слот уже занят к моменту создания события
	ErrSlotUnavailable = errors.New("create_event: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_event: internal error")
)
