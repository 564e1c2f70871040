package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingService/pkg/types"
)

// DefaultTimezone is the fixed zone all civil dates and times are interpreted in.
const DefaultTimezone = "Asia/Kolkata"

// WorkingHours is a civil start/end pair without a date component.
type WorkingHours struct {
	Start types.TimeString
	End   types.TimeString
}

// WeeklySchedule maps a weekday to its working hours. A weekday that is absent is a
// non-working day. The schedule is built once at startup and only read afterwards.
type WeeklySchedule map[time.Weekday]WorkingHours

// DefaultWeeklySchedule returns the compiled-in schedule.
func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		time.Monday:    {Start: "9:00", End: "20:00"},
		time.Tuesday:   {Start: "9:00", End: "20:00"},
		time.Wednesday: {Start: "9:00", End: "20:00"},
		time.Thursday:  {Start: "9:00", End: "20:00"},
		time.Friday:    {Start: "9:00", End: "17:00"},
		time.Saturday:  {Start: "9:00", End: "17:00"},
	}
}

// ScheduleFor returns the working hours configured for a weekday.
func (s WeeklySchedule) ScheduleFor(day time.Weekday) (WorkingHours, bool) {
	hours, ok := s[day]
	return hours, ok
}

// IsWorkingDay reports whether the weekday has working hours configured.
func (s WeeklySchedule) IsWorkingDay(day time.Weekday) bool {
	_, ok := s[day]
	return ok
}

// NextWorkingDay scans forward starting the day after from and returns the first working
// day, checking at most maxLookahead days. The returned value keeps from's wall clock.
func (s WeeklySchedule) NextWorkingDay(from time.Time, maxLookahead int) (time.Time, bool) {
	candidate := from
	for attempt := 0; attempt < maxLookahead; attempt++ {
		candidate = candidate.AddDate(0, 0, 1)
		if s.IsWorkingDay(candidate.Weekday()) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// Window returns the working interval of the given calendar day in loc.
func (h WorkingHours) Window(day time.Time, loc *time.Location) (Interval, error) {
	start, err := h.Start.On(day, loc)
	if err != nil {
		return Interval{}, fmt.Errorf("working hours start: %w", err)
	}
	end, err := h.End.On(day, loc)
	if err != nil {
		return Interval{}, fmt.Errorf("working hours end: %w", err)
	}
	if end.Before(start) {
		return Interval{}, fmt.Errorf("working hours end %s is before start %s", h.End, h.Start)
	}
	return Interval{Start: start, End: end}, nil
}
