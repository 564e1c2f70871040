package create_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingService/internal/api/handlers"
	createEvent "github.com/m04kA/SMC-MeetingService/internal/usecase/create_event"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDateTime    = "Invalid date format"
	msgSlotUnavailable    = "Slot is no longer available"
	msgFailedToCreate     = "Failed to create event"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/create-event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-event - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(req); len(details) > 0 {
		h.logger.Warn("POST /create-event - Validation failed: %v", details)
		handlers.RespondValidationError(w, details)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createEvent.ErrSlotUnavailable):
			h.logger.Warn("POST /create-event - Slot unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createEvent.ErrInvalidDateTime):
			h.logger.Warn("POST /create-event - Invalid date/time: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("POST /create-event - Failed to create event: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w, msgFailedToCreate)
		}
		return
	}

	h.logger.Info("POST /create-event - Event created: event_id=%s, date=%s, time=%s", result.EventID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
