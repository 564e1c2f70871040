package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-MeetingService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDateTime    = "Invalid date format"
	msgFailedToCheck      = "Failed to check availability"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/check-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /check-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(req); len(details) > 0 {
		h.logger.Warn("POST /check-availability - Validation failed: %v", details)
		handlers.RespondValidationError(w, details)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDateTime):
			h.logger.Warn("POST /check-availability - Invalid date/time: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("POST /check-availability - Failed to check: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w, msgFailedToCheck)
		}
		return
	}

	h.logger.Info("POST /check-availability - %s available=%t", result.Slot, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
