package get_day_slots

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate возвращается при некорректной или несуществующей дате
	ErrInvalidDate = errors.New("get_day_slots: invalid date")

	// ErrNotWorkingDay возвращается, когда на день недели нет расписания
	ErrNotWorkingDay = errors.New("get_day_slots: not a working day")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)

// NotWorkingDayError несет день недели для ответа клиенту
type NotWorkingDayError struct {
	Weekday time.Weekday
}

func (e *NotWorkingDayError) Error() string {
	return fmt.Sprintf("get_day_slots: no schedule configured for %s", e.Weekday)
}

func (e *NotWorkingDayError) Is(target error) bool {
	return target == ErrNotWorkingDay
}
