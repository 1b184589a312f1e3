// Package queries contains the read-side handlers for the analytics context.
package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/domain"
)

// DefaultWindowDays is the rolling window used when a query does not name one.
const DefaultWindowDays = 60

// GetStatisticsQuery represents the query for rolling-window task statistics.
type GetStatisticsQuery struct {
	UserID uuid.UUID
	Days   int // Window length; defaults to DefaultWindowDays
}

// GetStatisticsHandler handles statistics queries.
type GetStatisticsHandler struct {
	reader domain.Reader
	logger *slog.Logger
}

// NewGetStatisticsHandler creates a new get statistics handler.
func NewGetStatisticsHandler(reader domain.Reader, logger *slog.Logger) *GetStatisticsHandler {
	return &GetStatisticsHandler{reader: reader, logger: logger}
}

// Handle executes the statistics query. Failures are logged and reported as
// an all-zero snapshot so callers always get a usable result.
func (h *GetStatisticsHandler) Handle(ctx context.Context, query GetStatisticsQuery) domain.Statistics {
	days := query.Days
	if days <= 0 {
		days = DefaultWindowDays
	}
	since := time.Now().AddDate(0, 0, -days)

	stats, err := h.reader.WindowStatistics(ctx, query.UserID, since)
	if err != nil {
		h.logger.Error("failed to load task statistics",
			"user_id", query.UserID,
			"days", days,
			"error", err,
		)
		return domain.Statistics{}
	}

	return stats
}
