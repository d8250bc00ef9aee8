package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aashari/go-image-analysis-api/internal/app"
	"github.com/aashari/go-image-analysis-api/internal/logger"

	_ "github.com/aashari/go-image-analysis-api/docs"
)

// @title           Image Analysis API
// @version         1.0
// @description     An API that analyzes hand-drawn mathematical expressions with a generative vision model.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    https://github.com/aashari/go-image-analysis-api

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

func main() {
	// Initialize structured logging
	if err := logger.InitFromEnv(); err != nil {
		// Can't use logger here as it failed to initialize
		_, _ = os.Stderr.WriteString("FATAL: Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Create and initialize the application
	application, err := app.NewApp()
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	handler := application.SetupRoutes()

	addr := fmt.Sprintf("0.0.0.0:%d", application.Settings.Port)
	logger.Info("Server starting", "address", addr)
	logger.Info("Swagger documentation available", "path", "/swagger/index.html")

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
