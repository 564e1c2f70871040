package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-MeetingService/internal/usecase/check_availability"
)

const (
	msgSlotFree = "Slot is free"
	msgSlotBusy = "Slot is busy"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Date string `json:"date" validate:"required,civildate"` // "22/01/2024"
	Time string `json:"time" validate:"required,clock"`     // "10:30"
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{Date: r.Date, Time: r.Time}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) CheckAvailabilityResponse {
	message := msgSlotBusy
	if resp.Available {
		message = msgSlotFree
	}
	return CheckAvailabilityResponse{
		Slot:      resp.Slot,
		Available: resp.Available,
		Message:   message,
	}
}
