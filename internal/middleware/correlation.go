package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/aashari/go-image-analysis-api/internal/logger"
	"github.com/aashari/go-image-analysis-api/internal/utils"
)

// statusRecorder captures the status code written by downstream handlers
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestCorrelationMiddleware assigns request and correlation IDs with a
// client-first priority: a client-provided header wins, otherwise an ID is
// generated. IDs are echoed back on the response and attached to the request
// context for logging.
func RequestCorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(utils.HeaderRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		correlationID := r.Header.Get(utils.HeaderCorrelationID)
		if correlationID == "" {
			correlationID = utils.GenerateCorrelationID()
		}

		w.Header().Set(utils.HeaderRequestID, requestID)
		w.Header().Set(utils.HeaderCorrelationID, correlationID)

		ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
		ctx = context.WithValue(ctx, logger.CorrelationIDKey, correlationID)

		// Health checks are polled constantly; skip the request logging
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		logger.InfoCtx(ctx, "Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"remote_addr", r.RemoteAddr,
		)

		next.ServeHTTP(recorder, r.WithContext(ctx))

		logger.InfoCtx(ctx, "Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"status_code", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
