package get_upcoming_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// SlotService интерфейс поиска свободных слотов
type SlotService interface {
	Upcoming(ctx context.Context, now time.Time, limit, maxLookahead int) ([]domain.Interval, error)
}

// Metrics счетчик выданных слотов
type Metrics interface {
	SlotsServed(endpoint string, n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
