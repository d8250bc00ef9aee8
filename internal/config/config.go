package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/aashari/go-image-analysis-api/internal/utils"
)

// Credential holds an API key for an analysis vendor
type Credential struct {
	Platform string `json:"platform"`
	Type     string `json:"type"`
	Value    string `json:"value"`
}

// Settings holds the runtime configuration of the service
type Settings struct {
	Port          int
	GeminiBaseURL string
	GeminiModel   string
	ClientTimeout time.Duration
	MaxImageBytes int64
	Environment   string
}

// LoadCredentials reads vendor credentials from a JSON file
func LoadCredentials(filePath string) ([]Credential, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var creds []Credential
	err = json.Unmarshal(data, &creds)
	return creds, err
}

// LoadSettings builds the runtime settings from environment variables
func LoadSettings() Settings {
	return Settings{
		Port:          utils.GetEnvPort("PORT", 8900),
		GeminiBaseURL: utils.GetEnvString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:   utils.GetEnvString("GEMINI_MODEL", "gemini-1.5-flash"),
		ClientTimeout: utils.GetEnvDuration("CLIENT_TIMEOUT", 120*time.Second),
		MaxImageBytes: utils.GetEnvInt64("MAX_IMAGE_BYTES", 20*1024*1024),
		Environment:   utils.GetEnvString("ENVIRONMENT", "development"),
	}
}
