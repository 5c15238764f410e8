package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gatewerk/pipecheck/pkg/logging"
)

// requestIDMiddleware tags every request with an id and logs its outcome.
func requestIDMiddleware(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set("X-Request-ID", requestID)

			start := time.Now()
			next.ServeHTTP(w, r)

			logger.Debug("request handled",
				logging.F("request_id", requestID),
				logging.F("method", r.Method),
				logging.F("path", r.URL.Path),
				logging.F("duration", time.Since(start).String()),
			)
		})
	}
}
