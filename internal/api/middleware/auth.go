package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingService/internal/api/handlers"
)

const (
	// APIKeyHeader заголовок с ключом API
	APIKeyHeader = "x-api-key"

	msgUnauthorized = "Unauthorized: Invalid or missing API Key"
)

// APIKey пропускает только запросы с корректным x-api-key
func APIKey(apiKey string, log Logger) mux.MiddlewareFunc {
	expected := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				log.Warn("%s %s - Unauthorized request (request_id=%s)", r.Method, r.URL.Path, GetRequestID(r.Context()))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
