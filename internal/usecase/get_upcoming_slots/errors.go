package get_upcoming_slots

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_upcoming_slots: internal error")
)
