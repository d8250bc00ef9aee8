package analyzer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aashari/go-image-analysis-api/internal/config"
	"github.com/aashari/go-image-analysis-api/internal/imaging"
	"github.com/aashari/go-image-analysis-api/internal/logger"
	"github.com/aashari/go-image-analysis-api/internal/selector"
)

// GeminiAnalyzer analyzes images through the Gemini generateContent REST API
type GeminiAnalyzer struct {
	baseURL     string
	model       string
	credentials []config.Credential
	keySelector selector.Selector
	httpClient  *http.Client
}

// NewGeminiAnalyzer creates an analyzer backed by the Gemini API
func NewGeminiAnalyzer(settings config.Settings, creds []config.Credential, keySelector selector.Selector) *GeminiAnalyzer {
	timeout := settings.ClientTimeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	logger.Info("Gemini analyzer initialized",
		"base_url", settings.GeminiBaseURL,
		"model", settings.GeminiModel,
		"client_timeout", timeout,
		"credentials_count", len(creds),
	)

	return &GeminiAnalyzer{
		baseURL:     settings.GeminiBaseURL,
		model:       settings.GeminiModel,
		credentials: creds,
		keySelector: keySelector,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Request/response wire types for the generateContent endpoint

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Analyze sends the image and variable mapping to Gemini and parses the
// returned expression list
func (a *GeminiAnalyzer) Analyze(ctx context.Context, img *imaging.ImageData, vars map[string]any) ([]Result, error) {
	ctx = logger.WithComponent(ctx, "GeminiAnalyzer")

	cred, err := a.keySelector.Select(a.credentials)
	if err != nil {
		return nil, fmt.Errorf("credential selection failed: %w", err)
	}

	prompt, err := buildPrompt(vars)
	if err != nil {
		return nil, err
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: img.MimeType,
					Data:     base64.StdEncoding.EncodeToString(img.Raw),
				}},
				{Text: prompt},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyzer request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.baseURL, a.model, cred.Value)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build analyzer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read analyzer response: %w", err)
	}

	logger.DebugCtx(logger.WithStage(ctx, "VendorResponse"), "Gemini request completed",
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"response_size", len(body),
		"model", a.model,
	)

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse analyzer response: %w", err)
	}

	if parsed.Error != nil {
		return nil, fmt.Errorf("gemini error (%d %s): %s", parsed.Error.Code, parsed.Error.Status, parsed.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analyzer request failed with status %d", resp.StatusCode)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return ParseResults(parsed.Candidates[0].Content.Parts[0].Text)
}
