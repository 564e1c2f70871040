package meeting

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// NopLedger используется, когда журнал в Postgres выключен
type NopLedger struct{}

func (NopLedger) Reserve(_ context.Context, record *domain.MeetingRecord) (*domain.MeetingRecord, error) {
	record.Status = domain.StatusReserved
	return record, nil
}

func (NopLedger) AttachEvent(context.Context, int64, domain.CreatedEvent) error { return nil }

func (NopLedger) Release(context.Context, int64) error { return nil }

func (NopLedger) ListBetween(context.Context, string, time.Time, time.Time) ([]domain.MeetingRecord, error) {
	return nil, nil
}
