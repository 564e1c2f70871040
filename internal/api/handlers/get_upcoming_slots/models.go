package get_upcoming_slots

import (
	getUpcomingSlots "github.com/m04kA/SMC-MeetingService/internal/usecase/get_upcoming_slots"
	"github.com/m04kA/SMC-MeetingService/pkg/civiltime"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []string `json:"slots"` // "2024-01-22 09:15"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getUpcomingSlots.Response) SlotsResponse {
	out := SlotsResponse{Slots: make([]string, 0, len(resp.Slots))}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, s.Format(civiltime.SlotLayout))
	}
	return out
}
