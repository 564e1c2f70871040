package create_event

import (
	createEvent "github.com/m04kA/SMC-MeetingService/internal/usecase/create_event"
)

const msgEventCreated = "Event created successfully"

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	Name   string  `json:"name" validate:"required,max=200"`
	Email  string  `json:"email" validate:"required,email"`
	Mobile string  `json:"mobile" validate:"required,min=10"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Date   string  `json:"date" validate:"required,civildate"` // "22/01/2024"
	Time   string  `json:"time" validate:"required,clock"`     // "10:30"
}

// CreateEventResponse HTTP response model
type CreateEventResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateEventRequest) ToUseCaseRequest() *createEvent.Request {
	return &createEvent.Request{
		Name:   r.Name,
		Email:  r.Email,
		Mobile: r.Mobile,
		Notes:  r.Notes,
		Date:   r.Date,
		Time:   r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createEvent.Response) CreateEventResponse {
	return CreateEventResponse{
		Message: msgEventCreated,
		Link:    resp.Link,
	}
}
