package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aashari/go-image-analysis-api/internal/logger"
	"github.com/aashari/go-image-analysis-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init(logger.DefaultConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	m.Run()
}

func TestRequestCorrelationMiddleware_GeneratesIDs(t *testing.T) {
	var ctxRequestID any
	handler := RequestCorrelationMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = r.Context().Value(logger.RequestIDKey)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/calculate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	requestID := w.Header().Get(utils.HeaderRequestID)
	correlationID := w.Header().Get(utils.HeaderCorrelationID)
	require.NotEmpty(t, requestID)
	require.NotEmpty(t, correlationID)
	assert.Equal(t, requestID, ctxRequestID)
}

func TestRequestCorrelationMiddleware_ClientIDsWin(t *testing.T) {
	handler := RequestCorrelationMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/calculate", nil)
	req.Header.Set(utils.HeaderRequestID, "client-req-id")
	req.Header.Set(utils.HeaderCorrelationID, "client-corr-id")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "client-req-id", w.Header().Get(utils.HeaderRequestID))
	assert.Equal(t, "client-corr-id", w.Header().Get(utils.HeaderCorrelationID))
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, "*", w.Header().Get(utils.HeaderAccessControlAllowOrigin))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/calculate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(utils.HeaderAccessControlAllowMethods))
}
