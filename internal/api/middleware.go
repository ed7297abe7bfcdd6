// internal/api/middleware.go
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/common/observability"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// WithRequestLogging tags every request with an ID, emits an access log
// line, and records request metrics on both pipelines.
func WithRequestLogging(next http.Handler, log logger.Logger, obs *observability.Observability) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		// The mux fills in the matched pattern during ServeHTTP; fall
		// back to the raw path for unmatched requests.
		route := r.Pattern
		if route == "" {
			route = r.URL.Path
		}
		status := strconv.Itoa(rec.status)

		metrics.RequestsTotal.WithLabelValues(route, status).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		if obs != nil {
			obs.RecordRequest(r.Context(), route, status)
			obs.RecordRequestDuration(r.Context(), elapsed, route)
		}

		log.Info("request handled", map[string]interface{}{
			"requestId": requestID,
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"durationMs": elapsed.Milliseconds(),
		})
	})
}
