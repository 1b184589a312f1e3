// Package genai answers free-text questions about a user's task data, either
// through the Gemini API or a rule-based fallback when no API key is
// configured.
package genai

import (
	"context"

	"github.com/tasklens/tasklens/internal/analytics/domain"
)

// Request carries the question together with the task data it should be
// answered from.
type Request struct {
	Query string
	Stats domain.Statistics
	Tasks []domain.TaskRecord
}

// Responder turns a request into a natural-language answer.
type Responder interface {
	Answer(ctx context.Context, req Request) (string, error)
}
