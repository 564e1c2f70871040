package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/m04kA/SMC-MeetingService/internal/api/handlers"
)

// AccessLog логирует метод, путь, статус и длительность каждого запроса
func AccessLog(log Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			log.Info("method=%s path=%s status=%d duration=%s request_id=%s",
				r.Method, r.URL.Path, wrapped.statusCode, time.Since(start), GetRequestID(r.Context()))
		})
	}
}

// Recover превращает панику обработчика в 500
func Recover(log Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("panic in %s %s (request_id=%s): %v\n%s",
						r.Method, r.URL.Path, GetRequestID(r.Context()), rec, debug.Stack())
					handlers.RespondInternalError(w, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
