package get_upcoming_slots

import (
	"net/http"

	"github.com/m04kA/SMC-MeetingService/internal/api/handlers"
)

const msgFailedToFetchSlots = "Failed to fetch slots"

type Handler struct {
	useCase GetUpcomingSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetUpcomingSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/upcoming-free-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /upcoming-free-slots - Failed to fetch slots: %v", err)
		handlers.RespondInternalError(w, msgFailedToFetchSlots)
		return
	}

	h.logger.Info("GET /upcoming-free-slots - Returned %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
