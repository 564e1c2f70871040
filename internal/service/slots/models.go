package slots

import (
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// DaySlots свободные слоты одного рабочего дня
type DaySlots struct {
	Date         time.Time
	Weekday      time.Weekday
	WorkingHours domain.WorkingHours
	Slots        []domain.Interval
}
