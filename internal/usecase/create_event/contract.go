package create_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// AvailabilityChecker повторная проверка слота перед созданием события
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, start time.Time) (bool, error)
	SlotMinutes() int
}

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	InsertEvent(ctx context.Context, meeting domain.Meeting) (*domain.CreatedEvent, error)
}

// Locker сериализует бронирования одного календаря
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// MeetingLedger журнал встреч, защищающий слот уникальным ключом
type MeetingLedger interface {
	Reserve(ctx context.Context, record *domain.MeetingRecord) (*domain.MeetingRecord, error)
	AttachEvent(ctx context.Context, id int64, event domain.CreatedEvent) error
	Release(ctx context.Context, id int64) error
}

// Metrics счетчик результатов бронирования
type Metrics interface {
	Booking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
