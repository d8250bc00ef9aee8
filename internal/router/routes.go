package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/aashari/go-image-analysis-api/internal/handlers"
	"github.com/aashari/go-image-analysis-api/internal/monitoring"
)

// SetupRoutes configures all routes for the application
func SetupRoutes(apiHandlers *handlers.APIHandlers) http.Handler {
	mux := http.NewServeMux()

	// Register API handlers
	mux.HandleFunc("/health", apiHandlers.HealthHandler)
	mux.HandleFunc("/calculate", apiHandlers.CalculateHandler)
	mux.HandleFunc("/v1/results", apiHandlers.ResultsHandler)
	mux.HandleFunc("/v1/results/", apiHandlers.ResultHandler)

	// Add metrics endpoint
	mux.HandleFunc("/metrics", monitoring.MetricsHandler)

	// Add pprof endpoints for performance profiling
	monitoring.SetupPprofRoutes(mux)

	// Serve Swagger UI
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Wrap with metrics middleware
	return monitoring.MetricsMiddleware(mux)
}
