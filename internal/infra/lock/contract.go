package lock

import "context"

// Locker сериализует критические секции по ключу
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CalendarKey ключ блокировки бронирований одного календаря
func CalendarKey(calendarID string) string {
	return "calendar:" + calendarID
}
