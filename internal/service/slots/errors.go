package slots

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotWorkingDay возвращается, когда для дня недели не настроено расписание
	ErrNotWorkingDay = errors.New("slots: not a working day")

	// ErrInvalidSchedule возвращается, когда рабочие часы дня не удается превратить в интервал
	ErrInvalidSchedule = errors.New("slots: invalid working hours")
)

// NotWorkingDayError несет день недели для ответа вызывающему
type NotWorkingDayError struct {
	Weekday time.Weekday
}

func (e *NotWorkingDayError) Error() string {
	return fmt.Sprintf("slots: %s is not a working day", e.Weekday)
}

func (e *NotWorkingDayError) Is(target error) bool {
	return target == ErrNotWorkingDay
}
