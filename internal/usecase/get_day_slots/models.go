package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/domain"
)

// Request модель запроса слотов на дату
type Request struct {
	Date string // DD/MM/YYYY
}

// Response свободные слоты дня
type Response struct {
	Date         string // дата в том виде, в котором пришла
	Weekday      time.Weekday
	WorkingHours domain.WorkingHours
	Slots        []time.Time
}
