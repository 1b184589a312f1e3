package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/domain"
)

// GetMonthlySummaryQuery represents the query for a monthly summary.
// MonthOffset counts whole months back from the current one: 0 is the current
// month, 1 is last month.
type GetMonthlySummaryQuery struct {
	UserID      uuid.UUID
	MonthOffset int
}

// GetMonthlySummaryHandler assembles the monthly summary from statistics,
// category breakdown, productivity score, and completion streak.
type GetMonthlySummaryHandler struct {
	reader domain.Reader
	logger *slog.Logger
	now    func() time.Time
}

// NewGetMonthlySummaryHandler creates a new monthly summary handler.
func NewGetMonthlySummaryHandler(reader domain.Reader, logger *slog.Logger) *GetMonthlySummaryHandler {
	return &GetMonthlySummaryHandler{reader: reader, logger: logger, now: time.Now}
}

// Handle executes the monthly summary query. A failure in any constituent
// query is logged and reported as a zeroed summary carrying the error text,
// never as a hard failure.
func (h *GetMonthlySummaryHandler) Handle(ctx context.Context, query GetMonthlySummaryQuery) domain.MonthlySummary {
	now := h.now()
	start, end := domain.MonthRange(now, query.MonthOffset)

	stats, err := h.reader.RangeStatistics(ctx, query.UserID, start, end)
	if err != nil {
		return h.fail(query, "load monthly statistics", err)
	}

	tasks, err := h.reader.TasksInRange(ctx, query.UserID, start, end)
	if err != nil {
		return h.fail(query, "load monthly tasks", err)
	}
	categories := domain.BuildCategoryBreakdown(tasks)

	days, err := h.reader.DailyCompletions(ctx, query.UserID, start, end)
	if err != nil {
		return h.fail(query, "load daily completions", err)
	}
	streak := domain.CompletionStreak(days)

	return domain.NewMonthlySummary(
		domain.MonthLabel(start),
		domain.IsCurrentMonth(start, now),
		stats,
		streak,
		categories,
	)
}

func (h *GetMonthlySummaryHandler) fail(query GetMonthlySummaryQuery, step string, err error) domain.MonthlySummary {
	h.logger.Error("failed to generate monthly summary",
		"user_id", query.UserID,
		"month_offset", query.MonthOffset,
		"step", step,
		"error", err,
	)
	return domain.ZeroMonthlySummary(fmt.Sprintf("Failed to generate monthly summary: %v", err))
}
