package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aashari/go-image-analysis-api/internal/analyzer"
	"github.com/aashari/go-image-analysis-api/internal/config"
	"github.com/aashari/go-image-analysis-api/internal/database"
	"github.com/aashari/go-image-analysis-api/internal/errors"
	"github.com/aashari/go-image-analysis-api/internal/imaging"
	"github.com/aashari/go-image-analysis-api/internal/logger"
	"github.com/aashari/go-image-analysis-api/internal/monitoring"
	"github.com/aashari/go-image-analysis-api/internal/utils"
)

// startTime tracks when the application started
var startTime = time.Now()

var validate = validator.New()

// AnalysisStore persists completed analyses. A nil store disables persistence
// and degrades the health status.
type AnalysisStore interface {
	Insert(ctx context.Context, log *database.AnalysisLog) error
	GetRecent(ctx context.Context, limit, offset int64) ([]*database.AnalysisLog, error)
	GetByRequestID(ctx context.Context, requestID string) (*database.AnalysisLog, error)
	HealthCheck() error
}

// CalculateRequest is the payload submitted by the drawing frontend
type CalculateRequest struct {
	Image      string         `json:"image" validate:"required" example:"data:image/png;base64,iVBORw0KGgo..."`
	DictOfVars map[string]any `json:"dict_of_vars"`
}

// CalculateResponse is the envelope returned on success
type CalculateResponse struct {
	Message string            `json:"message" example:"Image processed"`
	Data    []analyzer.Result `json:"data"`
	Status  string            `json:"status" example:"success"`
}

// HealthResponse represents the structured health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Details   map[string]any    `json:"details"`
}

// ResultsResponse is the envelope for the recent-analyses listing
type ResultsResponse struct {
	Object string                  `json:"object" example:"list"`
	Data   []*database.AnalysisLog `json:"data"`
}

// APIHandlers contains the dependencies needed for API handlers
type APIHandlers struct {
	Settings    config.Settings
	Credentials []config.Credential
	Analyzer    analyzer.Analyzer
	Store       AnalysisStore
}

// NewAPIHandlers creates a new APIHandlers instance
func NewAPIHandlers(settings config.Settings, creds []config.Credential, a analyzer.Analyzer, store AnalysisStore) *APIHandlers {
	return &APIHandlers{
		Settings:    settings,
		Credentials: creds,
		Analyzer:    a,
		Store:       store,
	}
}

// CalculateHandler handles the image analysis endpoint
// @Summary      Analyze a canvas image
// @Description  Decodes a base64 data-URL image, sends it to the vision model with the user's variable assignments, and returns the extracted expressions
// @Tags         calculate
// @Accept       json
// @Produce      json
// @Param        request body CalculateRequest true "Image payload and variable mapping"
// @Success      200 {object} CalculateResponse "Analysis results"
// @Failure      400 {object} errors.ErrorResponse "Bad request error"
// @Failure      502 {object} errors.ErrorResponse "Vision backend error"
// @Router       /calculate [post]
func (h *APIHandlers) CalculateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithComponent(r.Context(), "CalculateHandler")

	if r.Method != http.MethodPost {
		errors.HandleError(w, errors.NewValidationError("method not allowed, use POST"), http.StatusMethodNotAllowed)
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.HandleError(w, errors.NewValidationError("invalid JSON body: "+err.Error()), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		errors.HandleError(w, errors.NewValidationError("field 'image' is required"), http.StatusBadRequest)
		return
	}

	img, err := imaging.Decode(req.Image, h.Settings.MaxImageBytes)
	if err != nil {
		errors.HandleError(w, errors.NewValidationError(err.Error()), http.StatusBadRequest)
		return
	}

	logger.InfoCtx(logger.WithStage(ctx, "Processing"), "Image decoded",
		"format", img.Format,
		"image_bytes", len(img.Raw),
		"width", img.Image.Bounds().Dx(),
		"height", img.Image.Bounds().Dy(),
		"variable_count", len(req.DictOfVars),
	)

	start := time.Now()
	results, err := h.Analyzer.Analyze(ctx, img, req.DictOfVars)
	duration := time.Since(start)

	if err != nil {
		h.persistAnalysis(ctx, r, img, req, nil, duration, err)
		errors.HandleError(w, errors.NewExternalError("image analysis failed: "+err.Error()), http.StatusBadGateway)
		return
	}

	// The analyzer's emission order is preserved; an empty result set still
	// serializes as an empty array
	if results == nil {
		results = []analyzer.Result{}
	}

	if len(results) > 0 {
		logger.InfoCtx(logger.WithStage(ctx, "Response"), "Analysis completed",
			"result_count", len(results),
			"last_result", results[len(results)-1],
			"duration_ms", duration.Milliseconds(),
		)
	} else {
		logger.InfoCtx(logger.WithStage(ctx, "Response"), "Analysis completed",
			"result_count", 0,
			"last_result", nil,
			"duration_ms", duration.Milliseconds(),
		)
	}

	monitoring.GetMetrics().RecordAnalysis(h.Settings.GeminiModel, len(results))
	h.persistAnalysis(ctx, r, img, req, results, duration, nil)

	response := CalculateResponse{
		Message: "Image processed",
		Data:    results,
		Status:  "success",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorCtx(ctx, "Failed to write calculate response", "error", err)
	}
}

// persistAnalysis stores the analysis log when a store is configured.
// Persistence failures are logged, never surfaced to the client.
func (h *APIHandlers) persistAnalysis(ctx context.Context, r *http.Request, img *imaging.ImageData, req CalculateRequest, results []analyzer.Result, duration time.Duration, analysisErr error) {
	if h.Store == nil {
		return
	}

	requestID, _ := r.Context().Value(logger.RequestIDKey).(string)
	log := &database.AnalysisLog{
		AnalysisID:    utils.GenerateAnalysisID(),
		RequestID:     requestID,
		ImageFormat:   img.Format,
		ImageBytes:    len(img.Raw),
		ImageWidth:    img.Image.Bounds().Dx(),
		ImageHeight:   img.Image.Bounds().Dy(),
		VariableCount: len(req.DictOfVars),
		Model:         h.Settings.GeminiModel,
		Results:       results,
		ResultCount:   len(results),
		DurationMs:    duration.Milliseconds(),
	}
	if analysisErr != nil {
		log.ErrorMessage = analysisErr.Error()
	}

	if err := h.Store.Insert(ctx, log); err != nil {
		logger.WarnCtx(ctx, "Failed to persist analysis log", "error", err)
	}
}

// HealthHandler handles the health check endpoint
// @Summary      Health check endpoint
// @Description  Returns structured health information including status, services, and version details
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200 {object} handlers.HealthResponse "Structured health response"
// @Router       /health [get]
func (h *APIHandlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	uptime := int64(time.Since(startTime).Seconds())

	// CI/CD sets VERSION to the git commit hash
	version := os.Getenv("VERSION")
	if version == "" {
		version = "unknown"
	}

	services := make(map[string]string)
	overallStatus := "healthy"

	if h.Analyzer != nil {
		services["analyzer"] = "up"
	} else {
		services["analyzer"] = "down"
		overallStatus = "unhealthy"
	}

	if len(h.Credentials) > 0 {
		services["credentials"] = "up"
	} else {
		services["credentials"] = "down"
		overallStatus = "degraded"
	}

	if h.Store == nil {
		// Persistence is optional, the core endpoint works without it
		services["database"] = "down"
		if overallStatus == "healthy" {
			overallStatus = "degraded"
		}
	} else if err := h.Store.HealthCheck(); err != nil {
		services["database"] = "unhealthy"
		if overallStatus == "healthy" {
			overallStatus = "degraded"
		}
	} else {
		services["database"] = "up"
	}

	healthResponse := HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  services,
		Details: map[string]any{
			"version": version,
			"uptime":  uptime,
			"model":   h.Settings.GeminiModel,
		},
	}

	w.Header().Set("Content-Type", "application/json")

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(healthResponse); err != nil {
		logger.ErrorCtx(r.Context(), "Failed to write health response", "error", err)
	}

	if overallStatus != "healthy" {
		logger.WarnCtx(r.Context(), "Health check degraded or unhealthy",
			"overall_status", overallStatus,
			"services_status", services,
			"uptime_seconds", uptime,
		)
	}
}

// ResultsHandler handles the recent-analyses listing endpoint
// @Summary      List recent analyses
// @Description  Returns recent analysis logs from the persistence layer, newest first
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        limit  query int false "Maximum number of logs to return (default 20, max 100)"
// @Param        offset query int false "Number of logs to skip"
// @Success      200 {object} handlers.ResultsResponse "Recent analysis logs"
// @Failure      503 {object} errors.ErrorResponse "Persistence not configured"
// @Router       /v1/results [get]
func (h *APIHandlers) ResultsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithComponent(r.Context(), "ResultsHandler")

	if h.Store == nil {
		errors.HandleError(w, errors.NewExternalError("analysis persistence is not configured"), http.StatusServiceUnavailable)
		return
	}

	limit := parseQueryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := parseQueryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	logs, err := h.Store.GetRecent(ctx, int64(limit), int64(offset))
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to fetch analysis logs", "error", err)
		errors.HandleError(w, errors.NewInternalError("failed to fetch analysis logs"), http.StatusInternalServerError)
		return
	}

	if logs == nil {
		logs = []*database.AnalysisLog{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ResultsResponse{Object: "list", Data: logs}); err != nil {
		logger.ErrorCtx(ctx, "Failed to write results response", "error", err)
	}
}

// ResultHandler handles the single-analysis lookup endpoint
// @Summary      Get an analysis by request ID
// @Description  Returns the analysis log recorded for the given request ID
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        request_id path string true "Request ID of the analysis"
// @Success      200 {object} database.AnalysisLog "Analysis log"
// @Failure      404 {object} errors.ErrorResponse "No analysis recorded for the request ID"
// @Failure      503 {object} errors.ErrorResponse "Persistence not configured"
// @Router       /v1/results/{request_id} [get]
func (h *APIHandlers) ResultHandler(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithComponent(r.Context(), "ResultHandler")

	if h.Store == nil {
		errors.HandleError(w, errors.NewExternalError("analysis persistence is not configured"), http.StatusServiceUnavailable)
		return
	}

	requestID := strings.TrimPrefix(r.URL.Path, "/v1/results/")
	if requestID == "" || strings.Contains(requestID, "/") {
		errors.HandleError(w, errors.NewValidationError("invalid request ID"), http.StatusBadRequest)
		return
	}

	log, err := h.Store.GetByRequestID(ctx, requestID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to fetch analysis log", "request_id", requestID, "error", err)
		errors.HandleError(w, errors.NewInternalError("failed to fetch analysis log"), http.StatusInternalServerError)
		return
	}
	if log == nil {
		errors.HandleError(w, errors.NewNotFoundError("no analysis recorded for request ID "+requestID), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(log); err != nil {
		logger.ErrorCtx(ctx, "Failed to write result response", "error", err)
	}
}

// parseQueryInt reads an integer query parameter with a default fallback
func parseQueryInt(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
