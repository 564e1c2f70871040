package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/internal/service/slots"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
)

const metricsEndpoint = "day"

// UseCase use case для получения свободных слотов на конкретную дату
type UseCase struct {
	slots   SlotService
	zone    *civiltime.Zone
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotService SlotService, zone *civiltime.Zone, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		slots:   slotService,
		zone:    zone,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute возвращает до DaySlotsLimit свободных слотов за рабочий день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := uc.zone.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetDaySlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	day, err := uc.slots.ForDay(ctx, date, domain.DaySlotsLimit)
	if err != nil {
		var notWorking *slots.NotWorkingDayError
		switch {
		case errors.As(err, &notWorking):
			uc.logger.Info("GetDaySlots: %s (%s) is not a working day", req.Date, notWorking.Weekday)
			return nil, &NotWorkingDayError{Weekday: notWorking.Weekday}
		case errors.Is(err, slots.ErrInvalidSchedule):
			uc.logger.Error("GetDaySlots: invalid working hours for %s: %v", req.Date, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		default:
			uc.logger.Error("GetDaySlots: failed to find slots for %s: %v", req.Date, err)
			return nil, fmt.Errorf("%w: failed to find slots: %v", ErrInternal, err)
		}
	}

	resp := &Response{
		Date:         req.Date,
		Weekday:      day.Weekday,
		WorkingHours: day.WorkingHours,
		Slots:        make([]time.Time, 0, len(day.Slots)),
	}
	for _, slot := range day.Slots {
		resp.Slots = append(resp.Slots, slot.Start)
	}

	uc.metrics.SlotsServed(metricsEndpoint, len(resp.Slots))
	uc.logger.Info("GetDaySlots: %s, found %d slots", req.Date, len(resp.Slots))
	return resp, nil
}
