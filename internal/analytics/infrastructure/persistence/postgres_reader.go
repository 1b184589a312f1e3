// Package persistence implements the analytics Reader against the task store.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/domain"
	"github.com/tasklens/tasklens/internal/shared/infrastructure/database"
)

// PostgresReader implements domain.Reader using PostgreSQL aggregate queries.
type PostgresReader struct {
	conn database.Connection
}

// NewPostgresReader creates a new PostgreSQL analytics reader.
func NewPostgresReader(conn database.Connection) *PostgresReader {
	return &PostgresReader{conn: conn}
}

const pgTaskColumns = `id, title, description, status, created_at, updated_at, due_date, start_at, end_at, owner_id`

// TasksSince returns tasks created at or after the given instant, newest first.
func (r *PostgresReader) TasksSince(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]domain.TaskRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE owner_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
	`, pgTaskColumns)

	rows, err := r.conn.Query(ctx, query, ownerID, since)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	return scanPgTasks(rows)
}

// TasksInRange returns tasks created inside [start, end), newest first.
func (r *PostgresReader) TasksInRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]domain.TaskRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
	`, pgTaskColumns)

	rows, err := r.conn.Query(ctx, query, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	return scanPgTasks(rows)
}

// WindowStatistics aggregates the rolling window [since, now). Overdue is
// measured against the current time.
func (r *PostgresReader) WindowStatistics(ctx context.Context, ownerID uuid.UUID, since time.Time) (domain.Statistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_tasks,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_tasks,
			COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress_tasks,
			COUNT(CASE WHEN status = 'todo' THEN 1 END) AS todo_tasks,
			COUNT(CASE WHEN due_date < NOW() AND status != 'completed' THEN 1 END) AS overdue_tasks,
			COALESCE(SUM(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN EXTRACT(EPOCH FROM (end_at - start_at)) / 3600.0
					ELSE 0
				END
			), 0) AS total_time_spent_hours,
			COALESCE(AVG(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN EXTRACT(EPOCH FROM (end_at - start_at)) / 3600.0
				END
			), 0) AS avg_time_per_task_hours
		FROM tasks
		WHERE owner_id = $1 AND created_at >= $2
	`

	return scanStatistics(r.conn.QueryRow(ctx, query, ownerID, since))
}

// RangeStatistics aggregates the explicit half-open range [start, end).
// Overdue is measured against the range's upper bound.
func (r *PostgresReader) RangeStatistics(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (domain.Statistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_tasks,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_tasks,
			COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress_tasks,
			COUNT(CASE WHEN status = 'todo' THEN 1 END) AS todo_tasks,
			COUNT(CASE WHEN due_date < $3 AND status != 'completed' THEN 1 END) AS overdue_tasks,
			COALESCE(SUM(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN EXTRACT(EPOCH FROM (end_at - start_at)) / 3600.0
					ELSE 0
				END
			), 0) AS total_time_spent_hours,
			COALESCE(AVG(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN EXTRACT(EPOCH FROM (end_at - start_at)) / 3600.0
				END
			), 0) AS avg_time_per_task_hours
		FROM tasks
		WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3
	`

	return scanStatistics(r.conn.QueryRow(ctx, query, ownerID, start, end))
}

// DailyCompletions groups tasks by creation date and counts completions per
// date, most recent date first.
func (r *PostgresReader) DailyCompletions(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]domain.DailyCompletion, error) {
	query := `
		SELECT DATE(created_at) AS task_date,
		       COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_count
		FROM tasks
		WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3
		GROUP BY DATE(created_at)
		ORDER BY task_date DESC
	`

	rows, err := r.conn.Query(ctx, query, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily completions: %w", err)
	}
	defer rows.Close()

	var days []domain.DailyCompletion
	for rows.Next() {
		var day domain.DailyCompletion
		if err := rows.Scan(&day.Date, &day.Completed); err != nil {
			return nil, fmt.Errorf("scan daily completion: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func scanStatistics(row database.Row) (domain.Statistics, error) {
	var (
		total, completed, inProgress, todo, overdue int
		totalHours, avgHours                        float64
	)
	if err := row.Scan(&total, &completed, &inProgress, &todo, &overdue, &totalHours, &avgHours); err != nil {
		// A window with no rows at all is an empty snapshot, not a failure.
		if database.IsNoRows(err) {
			return domain.Statistics{}, nil
		}
		return domain.Statistics{}, fmt.Errorf("scan statistics: %w", err)
	}
	return domain.NewStatistics(total, completed, inProgress, todo, overdue, totalHours, avgHours), nil
}

func scanPgTasks(rows database.Rows) ([]domain.TaskRecord, error) {
	var tasks []domain.TaskRecord
	for rows.Next() {
		var t domain.TaskRecord
		var description *string
		var status string
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&description,
			&status,
			&t.CreatedAt,
			&t.UpdatedAt,
			&t.DueDate,
			&t.StartAt,
			&t.EndAt,
			&t.OwnerID,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if description != nil {
			t.Description = *description
		}
		t.Status = domain.Status(status)
		t.TimeSpent = domain.Round2(t.HoursSpent())
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}
