package check_availability

import "errors"

var (
	// ErrInvalidDateTime возвращается, когда дата или время не разбираются
	ErrInvalidDateTime = errors.New("check_availability: invalid date/time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
