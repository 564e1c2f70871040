package googlecalendar

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает длительность и результат каждого вызова календаря
type Observer interface {
	ObserveCalendar(operation string, elapsed time.Duration, err error)
}
