// Package coach wraps an external generative-text API as a fail-soft
// fitness coach. Every entry point returns a human-readable string; network
// or API failures degrade to fallback messages and are never surfaced as
// errors to the caller.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	msgNoAPIKey    = "An API key is required for AI coaching features."
	msgUnavailable = "The coach is unreachable right now. Please try again later."
	msgNoAnalysis  = "Workout analysis is unavailable right now."
)

// Client talks to a Gemini-style generateContent endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a coach client. An empty API key is allowed; requests then
// short-circuit to the no-key message.
func New(cfg config.CoachConfig, log *slog.Logger) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        log,
	}
}

// AskCoach answers a free-form training question. contextJSON carries
// whatever workout context the UI wants the coach to see.
func (c *Client) AskCoach(ctx context.Context, question, contextJSON string) string {
	if c.apiKey == "" {
		return msgNoAPIKey
	}

	prompt := fmt.Sprintf(
		"You are an expert fitness coach. Answer concisely and practically.\nContext: %s\nUser question: %s",
		contextJSON, question)

	answer, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("coach request failed", "error", err)
		return msgUnavailable
	}
	return answer
}

// Analyze reviews recent logs against the program and returns a short
// training analysis.
func (c *Client) Analyze(ctx context.Context, recentLogs []models.WorkoutLog, program []models.WorkoutDay) string {
	if c.apiKey == "" {
		return msgNoAPIKey
	}

	summary, err := json.Marshal(map[string]any{
		"recent_sessions": summarizeLogs(recentLogs),
		"program":         summarizeProgram(program),
	})
	if err != nil {
		c.log.Warn("coach summary encoding failed", "error", err)
		return msgNoAnalysis
	}

	prompt := fmt.Sprintf(
		"You are an expert fitness coach. Analyze this training data and give brief, actionable feedback on progression, consistency, and recovery:\n%s",
		summary)

	analysis, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("coach analysis failed", "error", err)
		return msgNoAnalysis
	}
	return analysis
}

// generateContent wire types, trimmed to the fields used.
type generateRequest struct {
	Contents         []content `json:"contents"`
	GenerationConfig genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: genConfig{Temperature: 0.7},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling model API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API status %d: %s", resp.StatusCode, data)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("model API error: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model API")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
