package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/domain"
)

// ListRecentTasksQuery represents the query for recent raw task rows.
type ListRecentTasksQuery struct {
	UserID uuid.UUID
	Days   int // Window length; defaults to DefaultWindowDays
}

// ListRecentTasksHandler handles recent task listing queries.
type ListRecentTasksHandler struct {
	reader domain.Reader
}

// NewListRecentTasksHandler creates a new recent tasks handler.
func NewListRecentTasksHandler(reader domain.Reader) *ListRecentTasksHandler {
	return &ListRecentTasksHandler{reader: reader}
}

// Handle returns the user's tasks from the window, newest first.
func (h *ListRecentTasksHandler) Handle(ctx context.Context, query ListRecentTasksQuery) ([]domain.TaskRecord, error) {
	days := query.Days
	if days <= 0 {
		days = DefaultWindowDays
	}
	since := time.Now().AddDate(0, 0, -days)

	tasks, err := h.reader.TasksSince(ctx, query.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("list recent tasks: %w", err)
	}
	return tasks, nil
}
