package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/service/slots"
)

// SlotService интерфейс поиска свободных слотов за день
type SlotService interface {
	ForDay(ctx context.Context, date time.Time, limit int) (*slots.DaySlots, error)
}

// Metrics счетчик выданных слотов
type Metrics interface {
	SlotsServed(endpoint string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
