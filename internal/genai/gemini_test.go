package genai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklens/tasklens/internal/analytics/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeminiResponder_Answer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/models/gemini-2.0-flash-exp:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		prompt := req.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "Last 60 Days")
		assert.Contains(t, prompt, `"What did I work on?"`)
		assert.Contains(t, prompt, `"total_tasks": 5`)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {
					"parts": [{"text": "You worked on 5 tasks."}]
				}
			}]
		}`))
	}))
	defer server.Close()

	responder := NewGeminiResponder(GeminiConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}, testLogger())

	answer, err := responder.Answer(context.Background(), Request{
		Query: "What did I work on?",
		Stats: domain.Statistics{TotalTasks: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "You worked on 5 tasks.", answer)
}

func TestGeminiResponder_MultiPartResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {
					"parts": [{"text": "First."}, {"text": "Second."}]
				}
			}]
		}`))
	}))
	defer server.Close()

	responder := NewGeminiResponder(GeminiConfig{APIKey: "k", BaseURL: server.URL}, testLogger())

	answer, err := responder.Answer(context.Background(), Request{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, "First.\nSecond.", answer)
}

func TestGeminiResponder_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	responder := NewGeminiResponder(GeminiConfig{APIKey: "k", BaseURL: server.URL}, testLogger())

	_, err := responder.Answer(context.Background(), Request{Query: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini api error: 429")
}

func TestGeminiResponder_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	responder := NewGeminiResponder(GeminiConfig{APIKey: "k", BaseURL: server.URL}, testLogger())

	_, err := responder.Answer(context.Background(), Request{Query: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestGeminiResponder_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	responder := NewGeminiResponder(GeminiConfig{APIKey: "k", BaseURL: server.URL}, testLogger())

	for i := 0; i < 3; i++ {
		_, err := responder.Answer(context.Background(), Request{Query: "q"})
		require.Error(t, err)
	}

	// Breaker tripped: the next call fails without reaching the server.
	_, err := responder.Answer(context.Background(), Request{Query: "q"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "circuit open"))
	assert.Equal(t, 3, calls)
}
