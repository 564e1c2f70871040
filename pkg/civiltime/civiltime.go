// Package civiltime разбирает гражданские дату и время в одной фиксированной таймзоне
// и переводит моменты времени в UTC-представление внешних систем и обратно.
package civiltime

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout формат даты от клиента (DD/MM/YYYY)
	DateLayout = "02/01/2006"
	// ClockLayout 24-часовое время от клиента (HH:mm, H:mm)
	ClockLayout = "15:04"
	// SlotLayout формат слота в ответах
	SlotLayout = "2006-01-02 15:04"
	// ExternalLayout формат UTC-момента для календаря
	ExternalLayout = time.RFC3339
)

var (
	// ErrInvalidTimeFormat возвращается, когда дата или время не соответствуют формату
	// или обозначают несуществующее значение (31/02)
	ErrInvalidTimeFormat = errors.New("civiltime: invalid date/time format")

	// ErrMissingInstant возвращается для пустого внешнего момента
	ErrMissingInstant = errors.New("civiltime: missing external instant")
)

// Zone фиксированная таймзона, в которой выполняется вся арифметика
type Zone struct {
	loc *time.Location
}

// LoadZone загружает таймзону IANA
func LoadZone(name string) (*Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("civiltime: load zone %q: %w", name, err)
	}
	return &Zone{loc: loc}, nil
}

func (z *Zone) Location() *time.Location { return z.loc }

func (z *Zone) Name() string { return z.loc.String() }

// FromCivil интерпретирует дату (DD/MM/YYYY) и время (HH:mm) как настенное время зоны
func (z *Zone) FromCivil(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, z.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q: %v", ErrInvalidTimeFormat, date, clock, err)
	}
	return t, nil
}

// ParseDate возвращает полночь даты DD/MM/YYYY в зоне
func (z *Zone) ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, z.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeFormat, date, err)
	}
	return t, nil
}

// FromExternal разбирает UTC-момент из ответа календаря.
// Пустое значение - ошибка, решение пропустить или упасть принимает вызывающий.
func (z *Zone) FromExternal(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrMissingInstant
	}
	t, err := time.Parse(ExternalLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeFormat, s, err)
	}
	return t.In(z.loc), nil
}

// ToExternal форматирует момент как UTC ISO-8601
func ToExternal(t time.Time) string {
	return t.UTC().Format(ExternalLayout)
}

// AddMinutes прибавляет прошедшие минуты
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// RoundUpToSlot переносит t на следующую границу слота строго после него.
// Значение на границе сдвигается на целый слот, секунды отбрасываются.
func RoundUpToSlot(t time.Time, slotMinutes int) time.Time {
	if slotMinutes <= 0 {
		return t
	}
	// Truncate работает с абсолютным временем, для зон со смещением +5:30 нужна настенная минута
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	remainder := t.Minute() % slotMinutes
	if remainder == 0 {
		return AddMinutes(base, slotMinutes)
	}
	return AddMinutes(base, slotMinutes-remainder)
}

// FormatSlot форматирует начало слота как YYYY-MM-DD HH:mm в зоне
func (z *Zone) FormatSlot(t time.Time) string {
	return t.In(z.loc).Format(SlotLayout)
}
