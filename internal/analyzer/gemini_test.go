package analyzer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aashari/go-image-analysis-api/internal/config"
	"github.com/aashari/go-image-analysis-api/internal/imaging"
	"github.com/aashari/go-image-analysis-api/internal/logger"
	"github.com/aashari/go-image-analysis-api/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init(logger.DefaultConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	m.Run()
}

func testImage() *imaging.ImageData {
	return &imaging.ImageData{
		Raw:      []byte{0x89, 'P', 'N', 'G'},
		MimeType: "image/png",
		Format:   "png",
	}
}

func newTestAnalyzer(baseURL string) *GeminiAnalyzer {
	settings := config.Settings{
		GeminiBaseURL: baseURL,
		GeminiModel:   "gemini-1.5-flash",
		ClientTimeout: 5 * time.Second,
	}
	creds := []config.Credential{{Platform: "gemini", Type: "api-key", Value: "test-key"}}
	return NewGeminiAnalyzer(settings, creds, selector.NewRandomSelector())
}

func TestGeminiAnalyzer_Analyze(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-1.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[{\"expr\": \"2 + 2\", \"result\": 4}]"}]}}]}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	results, err := a.Analyze(context.Background(), testImage(), map[string]any{"x": 4})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "2 + 2", results[0].Expr)
	assert.Equal(t, float64(4), results[0].Result)

	// The request carries the image inline plus the instruction prompt
	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 2)
	require.NotNil(t, captured.Contents[0].Parts[0].InlineData)
	assert.Equal(t, "image/png", captured.Contents[0].Parts[0].InlineData.MimeType)
	assert.True(t, strings.Contains(captured.Contents[0].Parts[1].Text, `{"x":4}`))
}

func TestGeminiAnalyzer_FencedReply(t *testing.T) {
	reply := "```json\n[{\"expr\": \"x\", \"result\": 2, \"assign\": true}]\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": reply}}}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	results, err := a.Analyze(context.Background(), testImage(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Assign)
}

func TestGeminiAnalyzer_VendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	_, err := a.Analyze(context.Background(), testImage(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiAnalyzer_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	_, err := a.Analyze(context.Background(), testImage(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiAnalyzer_NoCredentials(t *testing.T) {
	settings := config.Settings{GeminiBaseURL: "http://localhost", GeminiModel: "gemini-1.5-flash"}
	a := NewGeminiAnalyzer(settings, nil, selector.NewRandomSelector())

	_, err := a.Analyze(context.Background(), testImage(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credential selection failed")
}

func TestGeminiAnalyzer_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect;
		// otherwise r.Context() is never cancelled and Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Analyze(ctx, testImage(), nil)
	assert.Error(t, err)
}
