package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	content := `[{"platform":"gemini","type":"api-key","value":"test-key"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "gemini", creds[0].Platform)
	assert.Equal(t, "api-key", creds[0].Type)
	assert.Equal(t, "test-key", creds[0].Value)
}

func TestLoadCredentials_MissingFile(t *testing.T) {
	_, err := LoadCredentials(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadCredentials_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadCredentials(path)
	assert.Error(t, err)
}

func TestLoadSettings_Defaults(t *testing.T) {
	settings := LoadSettings()

	assert.Equal(t, 8900, settings.Port)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", settings.GeminiBaseURL)
	assert.Equal(t, "gemini-1.5-flash", settings.GeminiModel)
	assert.Equal(t, 120*time.Second, settings.ClientTimeout)
	assert.Equal(t, int64(20*1024*1024), settings.MaxImageBytes)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("CLIENT_TIMEOUT", "60")

	settings := LoadSettings()

	assert.Equal(t, 9000, settings.Port)
	assert.Equal(t, "gemini-1.5-pro", settings.GeminiModel)
	assert.Equal(t, 60*time.Second, settings.ClientTimeout)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	// A missing .env file is not an error
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_KEY=loaded\n"), 0600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "loaded", os.Getenv("TEST_ENV_FILE_KEY"))
	os.Unsetenv("TEST_ENV_FILE_KEY")
}
