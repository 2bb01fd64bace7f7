package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1/models"
	defaultGeminiModel   = "gemini-2.5-flash"
)

// GeminiClient talks to the Google generative language HTTP API. One attempt
// per request, bounded by the HTTP client timeout; a timeout or non-200
// status is an error value for the caller to degrade on, never a panic.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	available  bool
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content struct {
		Parts []geminiPart `json:"parts"`
	} `json:"content"`
}

// NewGeminiClient reads GEMINI_API_KEY, GEMINI_MODEL and GEMINI_API_BASE from
// the environment. A missing key yields an unavailable client.
func NewGeminiClient() *GeminiClient {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	baseURL := strings.TrimSuffix(os.Getenv("GEMINI_API_BASE"), "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if apiKey == "" {
		slog.Warn("GEMINI_API_KEY not set, enrichment disabled")
	} else {
		slog.Info("Initializing Gemini client", "model", model)
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		available:  apiKey != "",
	}
}

// Available implements the Client interface.
func (g *GeminiClient) Available() bool {
	return g.available
}

// Generate implements the Client interface.
func (g *GeminiClient) Generate(ctx context.Context, prompt string,
	params GenerationParams) (string, error) {

	if !g.available {
		return "", ErrUnavailable
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.3,
			MaxOutputTokens: 2048,
		},
	}
	if params.Temperature != nil {
		payload.GenerationConfig.Temperature = *params.Temperature
	}
	if params.MaxTokens != nil {
		payload.GenerationConfig.MaxOutputTokens = *params.MaxTokens
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal the gemini payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build the gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Info("Calling Gemini generateContent", "model", g.model)
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read the gemini response: %w", err)
	}
	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", fmt.Errorf("gemini API temporarily overloaded (503)")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error: status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse the gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
