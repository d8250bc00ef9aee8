package database

import (
	"fmt"
	"os"
	"strings"
)

// DatabaseConfig holds MongoDB connection configuration
type DatabaseConfig struct {
	// MongoDB connection URI (includes all connection details including auth)
	URI string
	// The current environment (local, development, production, or test)
	Environment string
	// Database name derived from environment and service name
	DatabaseName string
	// Application name for MongoDB connection tracking
	AppName string
}

// GetDatabaseConfig derives the MongoDB configuration from the environment.
// The database name is auto-generated as {env-prefix}-{service-name}.
func GetDatabaseConfig() *DatabaseConfig {
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "development"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "go-image-analysis-api"
	}

	var envPrefix string
	switch environment {
	case "production", "prod":
		envPrefix = "prod"
		environment = "production"
	case "local":
		envPrefix = "loc"
	case "test":
		envPrefix = "test"
	default:
		envPrefix = "dev"
		environment = "development"
	}

	dbServiceName := strings.ReplaceAll(serviceName, "_", "-")
	dbServiceName = strings.TrimPrefix(dbServiceName, "go-")
	databaseName := fmt.Sprintf("%s-%s", envPrefix, dbServiceName)

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	return &DatabaseConfig{
		URI:          uri,
		Environment:  environment,
		DatabaseName: databaseName,
		AppName:      serviceName,
	}
}

// MaskSensitiveData returns a copy of the config safe for logging
func (c *DatabaseConfig) MaskSensitiveData() *DatabaseConfig {
	masked := *c
	if idx := strings.Index(masked.URI, "@"); idx >= 0 {
		if schemeEnd := strings.Index(masked.URI, "://"); schemeEnd >= 0 {
			masked.URI = masked.URI[:schemeEnd+3] + "***:***" + masked.URI[idx:]
		}
	}
	return &masked
}
