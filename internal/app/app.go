package app

import (
	"net/http"
	"os"

	"github.com/aashari/go-image-analysis-api/internal/analyzer"
	"github.com/aashari/go-image-analysis-api/internal/config"
	"github.com/aashari/go-image-analysis-api/internal/database"
	"github.com/aashari/go-image-analysis-api/internal/handlers"
	"github.com/aashari/go-image-analysis-api/internal/logger"
	"github.com/aashari/go-image-analysis-api/internal/middleware"
	"github.com/aashari/go-image-analysis-api/internal/router"
	"github.com/aashari/go-image-analysis-api/internal/selector"
)

// App centralizes the application's dependencies and configuration
type App struct {
	Settings    config.Settings
	Credentials []config.Credential
	Analyzer    analyzer.Analyzer
	Handlers    *handlers.APIHandlers
}

// NewApp creates a new App instance with all dependencies wired
func NewApp() (*App, error) {
	// .env first, so the rest of the configuration sees it
	if err := config.LoadEnvFromMultiplePaths(); err != nil {
		return nil, err
	}

	settings := config.LoadSettings()

	credentialsPath := os.Getenv("CREDENTIALS_FILE")
	if credentialsPath == "" {
		credentialsPath = "credentials.json"
	}
	creds, err := config.LoadCredentials(credentialsPath)
	if err != nil {
		return nil, err
	}

	if validationErr := config.ValidateConfiguration(creds, settings); validationErr != nil {
		return nil, validationErr
	}

	logger.Info("Configuration loaded",
		"credentials_count", len(creds),
		"model", settings.GeminiModel,
		"environment", settings.Environment,
	)

	geminiAnalyzer := analyzer.NewGeminiAnalyzer(settings, creds, selector.NewRandomSelector())

	// Persistence is optional; the calculate endpoint works without Mongo
	var store handlers.AnalysisStore
	if os.Getenv("MONGODB_URI") == "" {
		logger.Info("Analysis persistence disabled, MONGODB_URI not set")
	} else if repo, err := database.NewAnalysisLogRepository(); err != nil {
		logger.Warn("Analysis persistence disabled", "error", err)
	} else {
		store = repo
	}

	apiHandlers := handlers.NewAPIHandlers(settings, creds, geminiAnalyzer, store)

	return &App{
		Settings:    settings,
		Credentials: creds,
		Analyzer:    geminiAnalyzer,
		Handlers:    apiHandlers,
	}, nil
}

// SetupRoutes returns the fully configured HTTP handler chain
func (a *App) SetupRoutes() http.Handler {
	handler := router.SetupRoutes(a.Handlers)
	handler = middleware.RequestCorrelationMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)
	return handler
}
