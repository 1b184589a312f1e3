package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/domain"
)

// GetCategoryBreakdownQuery represents the query for a per-category breakdown
// of tasks created inside [Start, End).
type GetCategoryBreakdownQuery struct {
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
}

// GetCategoryBreakdownHandler handles category breakdown queries.
type GetCategoryBreakdownHandler struct {
	reader domain.Reader
	logger *slog.Logger
}

// NewGetCategoryBreakdownHandler creates a new category breakdown handler.
func NewGetCategoryBreakdownHandler(reader domain.Reader, logger *slog.Logger) *GetCategoryBreakdownHandler {
	return &GetCategoryBreakdownHandler{reader: reader, logger: logger}
}

// Handle executes the breakdown query. Failures are logged and reported as an
// empty breakdown.
func (h *GetCategoryBreakdownHandler) Handle(ctx context.Context, query GetCategoryBreakdownQuery) []domain.CategoryBucket {
	tasks, err := h.reader.TasksInRange(ctx, query.UserID, query.Start, query.End)
	if err != nil {
		h.logger.Error("failed to load tasks for category breakdown",
			"user_id", query.UserID,
			"start", query.Start,
			"end", query.End,
			"error", err,
		)
		return []domain.CategoryBucket{}
	}

	return domain.BuildCategoryBreakdown(tasks)
}
