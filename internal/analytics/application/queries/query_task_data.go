package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/domain"
	"github.com/tasklens/tasklens/internal/genai"
)

// NoTasksMessage is returned when the user has no tasks in the query window.
const NoTasksMessage = "You don't have any tasks yet. Create some tasks to start getting insights!"

// QueryTaskDataQuery represents a free-text question about the user's tasks.
type QueryTaskDataQuery struct {
	UserID uuid.UUID
	Query  string
}

// QueryTaskDataHandler answers free-text questions over the rolling 60-day
// window, delegating phrasing to the configured responder.
type QueryTaskDataHandler struct {
	reader    domain.Reader
	responder genai.Responder
	logger    *slog.Logger
}

// NewQueryTaskDataHandler creates a new free-text query handler.
func NewQueryTaskDataHandler(reader domain.Reader, responder genai.Responder, logger *slog.Logger) *QueryTaskDataHandler {
	return &QueryTaskDataHandler{reader: reader, responder: responder, logger: logger}
}

// Handle answers the question. Every failure path yields an apologetic
// message rather than an error; the caller always gets displayable text.
func (h *QueryTaskDataHandler) Handle(ctx context.Context, query QueryTaskDataQuery) string {
	since := time.Now().AddDate(0, 0, -DefaultWindowDays)

	tasks, err := h.reader.TasksSince(ctx, query.UserID, since)
	if err != nil {
		return h.fail(query, "load tasks", err)
	}
	if len(tasks) == 0 {
		return NoTasksMessage
	}

	stats, err := h.reader.WindowStatistics(ctx, query.UserID, since)
	if err != nil {
		return h.fail(query, "load statistics", err)
	}

	answer, err := h.responder.Answer(ctx, genai.Request{
		Query: query.Query,
		Stats: stats,
		Tasks: tasks,
	})
	if err != nil {
		return h.fail(query, "generate answer", err)
	}

	return answer
}

func (h *QueryTaskDataHandler) fail(query QueryTaskDataQuery, step string, err error) string {
	h.logger.Error("failed to answer task data query",
		"user_id", query.UserID,
		"step", step,
		"error", err,
	)
	return fmt.Sprintf("Sorry, I couldn't process your query. Error: %v", err)
}
