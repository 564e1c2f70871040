package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// BusySource отдает занятые интервалы календаря в диапазоне [timeMin, timeMax]
type BusySource interface {
	QueryBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.Interval, error)
}

// Shuffler переставляет n элементов. *rand.Rand и RandomShuffler удовлетворяют интерфейсу.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
