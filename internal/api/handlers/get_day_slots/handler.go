package get_day_slots

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-MeetingService/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-MeetingService/internal/usecase/get_day_slots"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format"
	msgNotWorkingDay      = "This day is not a working day"
	msgFailedToFetchSlots = "Failed to fetch slots"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/free-slots-day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DaySlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /free-slots-day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(req); len(details) > 0 {
		h.logger.Warn("POST /free-slots-day - Validation failed: %v", details)
		handlers.RespondValidationError(w, details)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var notWorking *getDaySlots.NotWorkingDayError
		switch {
		case errors.As(err, &notWorking):
			h.logger.Info("POST /free-slots-day - Not a working day: date=%s, day=%s", req.Date, notWorking.Weekday)
			handlers.RespondJSON(w, http.StatusBadRequest, NotWorkingDayResponse{
				Error:     fmt.Sprintf("No schedule configured for %s", notWorking.Weekday),
				Message:   msgNotWorkingDay,
				DayOfWeek: notWorking.Weekday.String(),
			})

		case errors.Is(err, getDaySlots.ErrInvalidDate):
			h.logger.Warn("POST /free-slots-day - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /free-slots-day - Failed to fetch slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w, msgFailedToFetchSlots)
		}
		return
	}

	h.logger.Info("POST /free-slots-day - Returned %d slots for %s", len(result.Slots), req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
