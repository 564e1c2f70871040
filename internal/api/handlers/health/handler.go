package health

import (
	"net/http"

	"github.com/m04kA/SMC-MeetingService/internal/api/handlers"
)

// Response тело ответа health check
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "UP", Message: "Server is healthy"})
}
