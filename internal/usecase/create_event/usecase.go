package create_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/internal/infra/lock"
	"github.com/m04kA/SMC-MeetingService/internal/infra/storage/meeting"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
	"github.com/m04kA/SMC-MeetingService/pkg/metrics"
)

// UseCase use case для создания встречи в календаре
type UseCase struct {
	checker    AvailabilityChecker
	calendar   CalendarClient
	locker     Locker
	ledger     MeetingLedger
	zone       *civiltime.Zone
	calendarID string
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	checker AvailabilityChecker,
	calendar CalendarClient,
	locker Locker,
	ledger MeetingLedger,
	zone *civiltime.Zone,
	calendarID string,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		checker:    checker,
		calendar:   calendar,
		locker:     locker,
		ledger:     ledger,
		zone:       zone,
		calendarID: calendarID,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute создает встречу. Проверка слота и создание события выполняются
// под блокировкой календаря, поэтому два запроса на один слот не пройдут оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start, err := uc.zone.FromCivil(req.Date, req.Time)
	if err != nil {
		uc.logger.Warn("CreateEvent: invalid date/time %q %q: %v", req.Date, req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	m := domain.Meeting{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Notes:    req.Notes,
		Start:    start,
		End:      civiltime.AddMinutes(start, uc.checker.SlotMinutes()),
		Timezone: uc.zone.Name(),
	}
	slot := uc.zone.FormatSlot(start)

	uc.logger.Info("CreateEvent: booking %s for %s", slot, req.Email)

	var created *domain.CreatedEvent
	err = uc.locker.WithLock(ctx, lock.CalendarKey(uc.calendarID), func(ctx context.Context) error {
		var err error
		created, err = uc.book(ctx, m)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotUnavailable):
			uc.metrics.Booking(metrics.BookingConflict)
			return nil, err
		case errors.Is(err, lock.ErrLockNotAcquired):
			uc.logger.Warn("CreateEvent: calendar %s is busy with another booking, %s rejected", uc.calendarID, slot)
			uc.metrics.Booking(metrics.BookingConflict)
			return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
		case errors.Is(err, ErrInternal):
			uc.metrics.Booking(metrics.BookingFailed)
			return nil, err
		default:
			uc.logger.Error("CreateEvent: failed to book %s: %v", slot, err)
			uc.metrics.Booking(metrics.BookingFailed)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.Booking(metrics.BookingCreated)
	uc.logger.Info("CreateEvent: event %s created for %s", created.ID, slot)

	return &Response{
		EventID: created.ID,
		Link:    created.Link,
		Start:   m.Start,
		End:     m.End,
	}, nil
}

// book выполняется под блокировкой: повторная проверка, резерв в журнале, создание события
func (uc *UseCase) book(ctx context.Context, m domain.Meeting) (*domain.CreatedEvent, error) {
	slot := uc.zone.FormatSlot(m.Start)

	// 1. Повторная проверка слота
	available, err := uc.checker.IsAvailable(ctx, m.Start)
	if err != nil {
		uc.logger.Error("CreateEvent: failed to re-check %s: %v", slot, err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("CreateEvent: slot %s is no longer available", slot)
		return nil, ErrSlotUnavailable
	}

	// 2. Резерв в журнале
	record, err := uc.ledger.Reserve(ctx, &domain.MeetingRecord{
		CalendarID: uc.calendarID,
		StartAt:    m.Start,
		EndAt:      m.End,
		Name:       m.Name,
		Email:      m.Email,
		Mobile:     m.Mobile,
		Notes:      m.Notes,
	})
	if err != nil {
		if errors.Is(err, meeting.ErrSlotTaken) {
			uc.logger.Warn("CreateEvent: slot %s already reserved in ledger", slot)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("CreateEvent: failed to reserve %s: %v", slot, err)
		return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}

	// 3. Событие в календаре
	created, err := uc.calendar.InsertEvent(ctx, m)
	if err != nil {
		uc.logger.Error("CreateEvent: failed to insert event for %s: %v", slot, err)
		if relErr := uc.ledger.Release(context.WithoutCancel(ctx), record.ID); relErr != nil {
			uc.logger.Error("CreateEvent: failed to release reservation id=%d: %v", record.ID, relErr)
		}
		return nil, fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
	}

	// Событие уже создано, ошибку журнала только логируем
	if err := uc.ledger.AttachEvent(ctx, record.ID, *created); err != nil {
		uc.logger.Error("CreateEvent: event %s created but ledger id=%d not updated: %v", created.ID, record.ID, err)
	}

	return created, nil
}
