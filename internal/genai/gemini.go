package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	defaultGeminiModel   = "gemini-2.0-flash-exp"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiTimeout        = 60 * time.Second
)

// GeminiConfig holds the Gemini API settings.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiResponder answers questions through the Gemini generateContent API.
// Calls go through a circuit breaker so a degraded upstream fails fast
// instead of stalling every query.
type GeminiResponder struct {
	cfg     GeminiConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
	logger  *slog.Logger
}

// NewGeminiResponder creates a responder backed by the Gemini API.
func NewGeminiResponder(cfg GeminiConfig, logger *slog.Logger) *GeminiResponder {
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}

	settings := gobreaker.Settings{
		Name:    "gemini",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &GeminiResponder{
		cfg:     cfg,
		client:  &http.Client{Timeout: geminiTimeout},
		breaker: gobreaker.NewCircuitBreaker[string](settings),
		logger:  logger,
	}
}

// Answer builds the data context for the question and asks Gemini.
func (r *GeminiResponder) Answer(ctx context.Context, req Request) (string, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	answer, err := r.breaker.Execute(func() (string, error) {
		return r.generateContent(ctx, prompt)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return "", fmt.Errorf("gemini unavailable: circuit open")
		}
		return "", err
	}

	return answer, nil
}

func (r *GeminiResponder) generateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
				},
			},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", r.cfg.BaseURL, r.cfg.Model, r.cfg.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(reqJSON)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %d %s", resp.StatusCode, string(body))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var texts []string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	if len(texts) == 0 {
		return "", fmt.Errorf("empty text in gemini response")
	}

	return strings.Join(texts, "\n"), nil
}

func buildPrompt(req Request) (string, error) {
	statsJSON, err := json.MarshalIndent(req.Stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal statistics: %w", err)
	}
	tasksJSON, err := json.MarshalIndent(req.Tasks, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}

	return fmt.Sprintf(`User's Task Data (Last 60 Days):

Statistics: %s

Tasks: %s

User Question: %q

Please answer the user's question based on their actual task data. Be specific, use numbers from the data, and provide actionable insights. If the question cannot be answered from the available data, explain what's missing.`,
		statsJSON, tasksJSON, req.Query), nil
}
