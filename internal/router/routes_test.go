package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aashari/go-image-analysis-api/internal/config"
	"github.com/aashari/go-image-analysis-api/internal/handlers"
	"github.com/aashari/go-image-analysis-api/internal/logger"
	"github.com/aashari/go-image-analysis-api/internal/selector"
	"github.com/stretchr/testify/assert"

	"github.com/aashari/go-image-analysis-api/internal/analyzer"
)

func TestMain(m *testing.M) {
	if err := logger.Init(logger.DefaultConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	m.Run()
}

func testHandlers() *handlers.APIHandlers {
	settings := config.Settings{
		GeminiBaseURL: "http://localhost",
		GeminiModel:   "gemini-1.5-flash",
		ClientTimeout: time.Second,
	}
	creds := []config.Credential{{Platform: "gemini", Type: "api-key", Value: "test"}}
	a := analyzer.NewGeminiAnalyzer(settings, creds, selector.NewRandomSelector())
	return handlers.NewAPIHandlers(settings, creds, a, nil)
}

func TestSetupRoutes_Health(t *testing.T) {
	handler := SetupRoutes(testHandlers())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_Metrics(t *testing.T) {
	handler := SetupRoutes(testHandlers())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_requests")
}

func TestSetupRoutes_CalculateRejectsGet(t *testing.T) {
	handler := SetupRoutes(testHandlers())

	req := httptest.NewRequest(http.MethodGet, "/calculate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSetupRoutes_ResultLookup(t *testing.T) {
	handler := SetupRoutes(testHandlers())

	// No store is configured, so the lookup route answers 503 rather than 404
	req := httptest.NewRequest(http.MethodGet, "/v1/results/req-1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSetupRoutes_UnknownPath(t *testing.T) {
	handler := SetupRoutes(testHandlers())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRoutes_Pprof(t *testing.T) {
	handler := SetupRoutes(testHandlers())

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
