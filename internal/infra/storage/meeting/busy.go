package meeting

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// Lister источник записей журнала
type Lister interface {
	ListBetween(ctx context.Context, calendarID string, from, to time.Time) ([]domain.MeetingRecord, error)
}

// BusySource отдает встречи журнала как занятые интервалы, чтобы резерв,
// еще не попавший в календарь, не предлагался повторно
type BusySource struct {
	lister     Lister
	calendarID string
	loc        *time.Location
}

// NewBusySource создает источник занятости поверх журнала
func NewBusySource(lister Lister, calendarID string, loc *time.Location) *BusySource {
	return &BusySource{lister: lister, calendarID: calendarID, loc: loc}
}

func (b *BusySource) QueryBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.Interval, error) {
	records, err := b.lister.ListBetween(ctx, b.calendarID, timeMin, timeMax)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(records))
	for _, rec := range records {
		busy = append(busy, domain.Interval{Start: rec.StartAt.In(b.loc), End: rec.EndAt.In(b.loc)})
	}
	return busy, nil
}
