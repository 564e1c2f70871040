package get_day_slots

import (
	getDaySlots "github.com/m04kA/SMC-MeetingService/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
)

// DaySlotsRequest HTTP request model
type DaySlotsRequest struct {
	Date string `json:"date" validate:"required,civildate"` // "22/01/2024"
}

// WorkingHours рабочие часы дня
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date         string       `json:"date"`
	DayOfWeek    string       `json:"dayOfWeek"`
	WorkingHours WorkingHours `json:"workingHours"`
	Slots        []string     `json:"slots"`
}

// NotWorkingDayResponse тело 400 для дня без расписания
type NotWorkingDayResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	DayOfWeek string `json:"dayOfWeek"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DaySlotsRequest) ToUseCaseRequest() *getDaySlots.Request {
	return &getDaySlots.Request{Date: r.Date}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDaySlots.Response) DaySlotsResponse {
	out := DaySlotsResponse{
		Date:      resp.Date,
		DayOfWeek: resp.Weekday.String(),
		WorkingHours: WorkingHours{
			Start: resp.WorkingHours.Start.String(),
			End:   resp.WorkingHours.End.String(),
		},
		Slots: make([]string, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, s.Format(civiltime.SlotLayout))
	}
	return out
}
