package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату H:MM / HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток без даты ("9:00", "17:30")
// Используется для рабочих часов, которые задаются без привязки к дате
type TimeString string

func (t TimeString) String() string {
	return string(t)
}

// On возвращает момент t в календарный день date в зоне loc.
// time.Date учитывает правила зоны, смещение вычисляется для конкретной даты.
func (t TimeString) On(date time.Time, loc *time.Location) (time.Time, error) {
	m, err := t.minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.In(loc).Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, loc), nil
}

func (t TimeString) minutes() (int, error) {
	hh, mm, ok := strings.Cut(string(t), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// 24:00 допустимо только как конец рабочего дня
	if h == 24 && m != 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return h*60 + m, nil
}
