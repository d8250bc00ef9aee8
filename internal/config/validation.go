package config

import (
	"fmt"
	"strings"

	"github.com/aashari/go-image-analysis-api/internal/errors"
	"github.com/go-playground/validator/v10"
)

// ValidatedCredential mirrors Credential with validation tags
type ValidatedCredential struct {
	Platform string `validate:"required,oneof=gemini"`
	Type     string `validate:"required,oneof=api-key"`
	Value    string `validate:"required,min=1"`
}

// ValidatedSettings mirrors Settings with validation tags
type ValidatedSettings struct {
	Port          int    `validate:"required,min=1,max=65535"`
	GeminiBaseURL string `validate:"required,url"`
	GeminiModel   string `validate:"required,min=1"`
	MaxImageBytes int64  `validate:"required,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateConfiguration validates credentials and settings together
func ValidateConfiguration(creds []Credential, settings Settings) *errors.APIError {
	if err := ValidateCredentials(creds); err != nil {
		return err
	}
	return ValidateSettings(settings)
}

// ValidateCredentials validates credential configuration
func ValidateCredentials(creds []Credential) *errors.APIError {
	if len(creds) == 0 {
		return errors.NewConfigurationError("No credentials provided")
	}

	for i, cred := range creds {
		validated := ValidatedCredential{
			Platform: cred.Platform,
			Type:     cred.Type,
			Value:    cred.Value,
		}
		if err := validate.Struct(validated); err != nil {
			return formatValidationError(fmt.Sprintf("credential[%d]", i), err)
		}
	}

	return nil
}

// ValidateSettings validates the runtime settings
func ValidateSettings(settings Settings) *errors.APIError {
	validated := ValidatedSettings{
		Port:          settings.Port,
		GeminiBaseURL: settings.GeminiBaseURL,
		GeminiModel:   settings.GeminiModel,
		MaxImageBytes: settings.MaxImageBytes,
	}
	if err := validate.Struct(validated); err != nil {
		return formatValidationError("settings", err)
	}
	return nil
}

// formatValidationError converts validator errors into a configuration error
func formatValidationError(scope string, err error) *errors.APIError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewConfigurationError(fmt.Sprintf("%s: %v", scope, err))
	}

	var fields []string
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return errors.NewConfigurationError(
		fmt.Sprintf("Invalid %s: failed validation on %s", scope, strings.Join(fields, ", ")),
	)
}
