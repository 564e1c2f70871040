package check_availability

import (
	"context"
	"time"
)

// AvailabilityChecker проверяет свободен ли один слот
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, start time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
