package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"

	"github.com/aashari/go-image-analysis-api/internal/logger"
)

// Metrics holds application metrics
type Metrics struct {
	mu                 sync.RWMutex
	RequestCount       int64
	RequestDuration    time.Duration
	ErrorCount         int64
	AnalysisCount      int64
	ResultCount        int64
	ModelRequestCounts map[string]int64
	StatusCodeCounts   map[int]int64
	StartTime          time.Time
}

// Global metrics instance
var globalMetrics = &Metrics{
	ModelRequestCounts: make(map[string]int64),
	StatusCodeCounts:   make(map[int]int64),
	StartTime:          time.Now(),
}

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	return globalMetrics
}

// RecordRequest records a request with its duration and status
func (m *Metrics) RecordRequest(duration time.Duration, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestCount++
	m.RequestDuration += duration
	m.StatusCodeCounts[statusCode]++

	if statusCode >= 400 {
		m.ErrorCount++
	}
}

// RecordAnalysis records a completed image analysis and its result count
func (m *Metrics) RecordAnalysis(model string, resultCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AnalysisCount++
	m.ResultCount += int64(resultCount)
	if model != "" {
		m.ModelRequestCounts[model]++
	}
}

// GetStats returns current statistics
func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uptime := time.Since(m.StartTime)
	avgDuration := time.Duration(0)
	if m.RequestCount > 0 {
		avgDuration = m.RequestDuration / time.Duration(m.RequestCount)
	}

	errorRate := 0.0
	if m.RequestCount > 0 {
		errorRate = float64(m.ErrorCount) / float64(m.RequestCount)
	}

	// Copy maps to avoid race conditions
	modelCounts := make(map[string]int64)
	for k, v := range m.ModelRequestCounts {
		modelCounts[k] = v
	}

	statusCounts := make(map[int]int64)
	for k, v := range m.StatusCodeCounts {
		statusCounts[k] = v
	}

	return map[string]interface{}{
		"uptime_seconds":      uptime.Seconds(),
		"total_requests":      m.RequestCount,
		"total_errors":        m.ErrorCount,
		"total_analyses":      m.AnalysisCount,
		"total_results":       m.ResultCount,
		"average_duration_ms": avgDuration.Milliseconds(),
		"error_rate":          errorRate,
		"model_requests":      modelCounts,
		"status_code_counts":  statusCounts,
		"start_time":          m.StartTime.Format(time.RFC3339),
	}
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestCount = 0
	m.RequestDuration = 0
	m.ErrorCount = 0
	m.AnalysisCount = 0
	m.ResultCount = 0
	m.ModelRequestCounts = make(map[string]int64)
	m.StatusCodeCounts = make(map[int]int64)
	m.StartTime = time.Now()
}

// metricsResponseWriter wraps http.ResponseWriter to capture the status code
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records request counts and durations
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		globalMetrics.RecordRequest(time.Since(start), wrapped.statusCode)
	})
}

// MetricsHandler serves the current metrics snapshot as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(globalMetrics.GetStats()); err != nil {
		logger.Error("Failed to encode metrics response", "error", err)
	}
}

// SetupPprofRoutes registers pprof endpoints for performance profiling
func SetupPprofRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
}
