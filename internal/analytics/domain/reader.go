package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reader provides aggregate, read-only access to the task store. Each call is
// an independent unit of work over one storage connection; implementations
// must not cache results.
type Reader interface {
	// TasksSince returns every task created at or after the given instant,
	// newest first, with per-task tracked hours populated.
	TasksSince(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]TaskRecord, error)

	// TasksInRange returns every task created inside [start, end), newest
	// first, with per-task tracked hours populated.
	TasksInRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]TaskRecord, error)

	// WindowStatistics aggregates the rolling window [since, now). Overdue
	// tasks are those due before the current time and not completed.
	WindowStatistics(ctx context.Context, ownerID uuid.UUID, since time.Time) (Statistics, error)

	// RangeStatistics aggregates the explicit half-open range [start, end).
	// Overdue tasks are those due before the range's upper bound and not
	// completed. This deliberately differs from WindowStatistics.
	RangeStatistics(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (Statistics, error)

	// DailyCompletions groups tasks created inside [start, end) by creation
	// date and counts completions per date, most recent date first. Dates
	// with no tasks produce no entry.
	DailyCompletions(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]DailyCompletion, error)
}
