package get_upcoming_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

const metricsEndpoint = "upcoming"

// UseCase use case для получения ближайших свободных слотов
type UseCase struct {
	slots        SlotService
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	limit        int
	lookahead    int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots SlotService, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		slots:        slots,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		limit:        domain.UpcomingSlotsLimit,
		lookahead:    domain.MaxLookaheadDays,
	}
}

// Execute возвращает до UpcomingSlotsLimit свободных слотов начиная с текущего момента
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	found, err := uc.slots.Upcoming(ctx, now, uc.limit, uc.lookahead)
	if err != nil {
		uc.logger.Error("GetUpcomingSlots: failed to find slots: %v", err)
		return nil, fmt.Errorf("%w: failed to find slots: %v", ErrInternal, err)
	}

	resp := &Response{Slots: make([]time.Time, 0, len(found))}
	for _, slot := range found {
		resp.Slots = append(resp.Slots, slot.Start)
	}

	uc.metrics.SlotsServed(metricsEndpoint, len(resp.Slots))
	uc.logger.Info("GetUpcomingSlots: found %d slots", len(resp.Slots))
	return resp, nil
}
