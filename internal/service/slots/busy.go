package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

type combinedBusy []BusySource

// CombineBusy объединяет занятость нескольких источников. Ошибка любого источника прерывает запрос.
func CombineBusy(sources ...BusySource) BusySource {
	if len(sources) == 1 {
		return sources[0]
	}
	return combinedBusy(sources)
}

func (c combinedBusy) QueryBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.Interval, error) {
	var busy []domain.Interval
	for _, source := range c {
		intervals, err := source.QueryBusy(ctx, timeMin, timeMax)
		if err != nil {
			return nil, err
		}
		busy = append(busy, intervals...)
	}
	return busy, nil
}
