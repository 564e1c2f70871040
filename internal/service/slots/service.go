package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
)

// Service ищет свободные слоты по недельному расписанию и занятости календаря.
// Не хранит состояния между запросами: каждый вызов пересчитывает слоты заново.
type Service struct {
	schedule    domain.WeeklySchedule
	loc         *time.Location
	busy        BusySource
	engine      *Engine
	slotMinutes int
	logger      Logger
}

// NewService создает сервис слотов
func NewService(
	schedule domain.WeeklySchedule,
	loc *time.Location,
	busy BusySource,
	engine *Engine,
	slotMinutes int,
	logger Logger,
) *Service {
	return &Service{
		schedule:    schedule,
		loc:         loc,
		busy:        busy,
		engine:      engine,
		slotMinutes: slotMinutes,
		logger:      logger,
	}
}

// SlotMinutes длина слота в минутах
func (s *Service) SlotMinutes() int {
	return s.slotMinutes
}

// FreeSlots запрашивает занятость за окно и возвращает до limit случайных свободных слотов.
// Пустое окно или limit <= 0 - пустой результат без обращения к календарю.
func (s *Service) FreeSlots(ctx context.Context, window domain.Interval, limit int) ([]domain.Interval, error) {
	if window.IsEmpty() || limit <= 0 {
		return []domain.Interval{}, nil
	}

	busy, err := s.busy.QueryBusy(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return s.engine.Generate(window, busy, s.slotMinutes, limit), nil
}

// Upcoming возвращает до limit свободных слотов начиная с now: остаток сегодняшнего рабочего дня,
// затем следующие рабочие дни, не более maxLookahead дней. Нехватка дней - не ошибка.
func (s *Service) Upcoming(ctx context.Context, now time.Time, limit, maxLookahead int) ([]domain.Interval, error) {
	now = now.In(s.loc)
	result := make([]domain.Interval, 0, max(limit, 0))
	if limit <= 0 {
		return result, nil
	}

	// 1. Остаток сегодняшнего рабочего дня
	if hours, ok := s.schedule.ScheduleFor(now.Weekday()); ok {
		today, err := hours.Window(now, s.loc)
		switch {
		case err != nil:
			s.logger.Warn("Upcoming: skipping %s, invalid working hours: %v", now.Weekday(), err)
		case now.Before(today.End):
			start := civiltime.RoundUpToSlot(now, s.slotMinutes)
			if start.Before(today.Start) {
				start = today.Start
			}
			slots, err := s.FreeSlots(ctx, domain.Interval{Start: start, End: today.End}, limit)
			if err != nil {
				return nil, fmt.Errorf("today %s: %w", now.Format(civiltime.DateLayout), err)
			}
			result = append(result, slots...)
		}
	}

	// 2. Следующие рабочие дни, пока не наберем limit
	day, ok := s.schedule.NextWorkingDay(now, domain.MaxLookaheadDays)
	for attempt := 0; ok && len(result) < limit && attempt < maxLookahead; attempt++ {
		hours, _ := s.schedule.ScheduleFor(day.Weekday())
		window, err := hours.Window(day, s.loc)
		if err != nil {
			s.logger.Warn("Upcoming: skipping %s, invalid working hours: %v", day.Format(civiltime.DateLayout), err)
		} else {
			slots, err := s.FreeSlots(ctx, window, limit-len(result))
			if err != nil {
				return nil, fmt.Errorf("day %s: %w", day.Format(civiltime.DateLayout), err)
			}
			result = append(result, slots...)
		}

		day, ok = s.schedule.NextWorkingDay(day, domain.MaxLookaheadDays)
	}

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ForDay возвращает до limit свободных слотов за весь рабочий день date
func (s *Service) ForDay(ctx context.Context, date time.Time, limit int) (*DaySlots, error) {
	date = date.In(s.loc)

	hours, ok := s.schedule.ScheduleFor(date.Weekday())
	if !ok {
		return nil, &NotWorkingDayError{Weekday: date.Weekday()}
	}

	window, err := hours.Window(date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	slots, err := s.FreeSlots(ctx, window, limit)
	if err != nil {
		return nil, err
	}

	return &DaySlots{
		Date:         date,
		Weekday:      date.Weekday(),
		WorkingHours: hours,
		Slots:        slots,
	}, nil
}

// IsAvailable проверяет один слот, начинающийся в start. Занятость запрашивается за слот,
// расширенный на минуту с каждой стороны, пересечение проверяется с исходным слотом.
func (s *Service) IsAvailable(ctx context.Context, start time.Time) (bool, error) {
	slot := domain.Interval{
		Start: start.In(s.loc),
		End:   civiltime.AddMinutes(start.In(s.loc), s.slotMinutes),
	}

	probeStart := civiltime.AddMinutes(slot.Start, -domain.AvailabilityProbeMinutes)
	probeEnd := civiltime.AddMinutes(slot.End, domain.AvailabilityProbeMinutes)

	busy, err := s.busy.QueryBusy(ctx, probeStart, probeEnd)
	if err != nil {
		return false, err
	}

	return !slot.OverlapsAny(busy), nil
}
