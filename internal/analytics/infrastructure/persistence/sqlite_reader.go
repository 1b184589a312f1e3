package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tasklens/tasklens/internal/analytics/domain"
	"github.com/tasklens/tasklens/internal/shared/infrastructure/database"
)

// SQLiteReader implements domain.Reader against the local SQLite task store.
// Timestamps are stored as RFC3339 TEXT, so durations are computed with
// julianday arithmetic and all time arguments are bound as formatted strings.
type SQLiteReader struct {
	conn database.Connection
}

// NewSQLiteReader creates a new SQLite analytics reader.
func NewSQLiteReader(conn database.Connection) *SQLiteReader {
	return &SQLiteReader{conn: conn}
}

const sqliteTaskColumns = `id, title, description, status, created_at, updated_at, due_date, start_at, end_at, owner_id`

// TasksSince returns tasks created at or after the given instant, newest first.
func (r *SQLiteReader) TasksSince(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]domain.TaskRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE owner_id = ? AND created_at >= ?
		ORDER BY created_at DESC
	`, sqliteTaskColumns)

	rows, err := r.conn.Query(ctx, query, ownerID.String(), since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	return scanSQLiteTasks(rows)
}

// TasksInRange returns tasks created inside [start, end), newest first.
func (r *SQLiteReader) TasksInRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]domain.TaskRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE owner_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at DESC
	`, sqliteTaskColumns)

	rows, err := r.conn.Query(ctx, query,
		ownerID.String(),
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	return scanSQLiteTasks(rows)
}

// WindowStatistics aggregates the rolling window [since, now). Overdue is
// measured against the current time.
func (r *SQLiteReader) WindowStatistics(ctx context.Context, ownerID uuid.UUID, since time.Time) (domain.Statistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_tasks,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_tasks,
			COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress_tasks,
			COUNT(CASE WHEN status = 'todo' THEN 1 END) AS todo_tasks,
			COUNT(CASE WHEN due_date IS NOT NULL AND due_date < ? AND status != 'completed' THEN 1 END) AS overdue_tasks,
			COALESCE(SUM(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN (julianday(end_at) - julianday(start_at)) * 24.0
					ELSE 0
				END
			), 0) AS total_time_spent_hours,
			COALESCE(AVG(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN (julianday(end_at) - julianday(start_at)) * 24.0
				END
			), 0) AS avg_time_per_task_hours
		FROM tasks
		WHERE owner_id = ? AND created_at >= ?
	`

	now := time.Now().UTC().Format(time.RFC3339)
	row := r.conn.QueryRow(ctx, query, now, ownerID.String(), since.UTC().Format(time.RFC3339))
	return scanStatistics(row)
}

// RangeStatistics aggregates the explicit half-open range [start, end).
// Overdue is measured against the range's upper bound.
func (r *SQLiteReader) RangeStatistics(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (domain.Statistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_tasks,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_tasks,
			COUNT(CASE WHEN status = 'in_progress' THEN 1 END) AS in_progress_tasks,
			COUNT(CASE WHEN status = 'todo' THEN 1 END) AS todo_tasks,
			COUNT(CASE WHEN due_date IS NOT NULL AND due_date < ? AND status != 'completed' THEN 1 END) AS overdue_tasks,
			COALESCE(SUM(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN (julianday(end_at) - julianday(start_at)) * 24.0
					ELSE 0
				END
			), 0) AS total_time_spent_hours,
			COALESCE(AVG(
				CASE
					WHEN start_at IS NOT NULL AND end_at IS NOT NULL
					THEN (julianday(end_at) - julianday(start_at)) * 24.0
				END
			), 0) AS avg_time_per_task_hours
		FROM tasks
		WHERE owner_id = ? AND created_at >= ? AND created_at < ?
	`

	row := r.conn.QueryRow(ctx, query,
		end.UTC().Format(time.RFC3339),
		ownerID.String(),
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
	return scanStatistics(row)
}

// DailyCompletions groups tasks by creation date and counts completions per
// date, most recent date first.
func (r *SQLiteReader) DailyCompletions(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]domain.DailyCompletion, error) {
	query := `
		SELECT DATE(created_at) AS task_date,
		       COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_count
		FROM tasks
		WHERE owner_id = ? AND created_at >= ? AND created_at < ?
		GROUP BY DATE(created_at)
		ORDER BY task_date DESC
	`

	rows, err := r.conn.Query(ctx, query,
		ownerID.String(),
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("query daily completions: %w", err)
	}
	defer rows.Close()

	var days []domain.DailyCompletion
	for rows.Next() {
		var dateText string
		var completed int
		if err := rows.Scan(&dateText, &completed); err != nil {
			return nil, fmt.Errorf("scan daily completion: %w", err)
		}
		date, err := time.Parse("2006-01-02", dateText)
		if err != nil {
			return nil, fmt.Errorf("parse task date %q: %w", dateText, err)
		}
		days = append(days, domain.DailyCompletion{Date: date, Completed: completed})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func scanSQLiteTasks(rows database.Rows) ([]domain.TaskRecord, error) {
	var tasks []domain.TaskRecord
	for rows.Next() {
		var (
			t                        domain.TaskRecord
			idText, ownerText        string
			status                   string
			description              sql.NullString
			createdText, updatedText string
			dueText, startText       sql.NullString
			endText                  sql.NullString
		)
		if err := rows.Scan(
			&idText,
			&t.Title,
			&description,
			&status,
			&createdText,
			&updatedText,
			&dueText,
			&startText,
			&endText,
			&ownerText,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}

		id, err := uuid.Parse(idText)
		if err != nil {
			return nil, fmt.Errorf("parse task id %q: %w", idText, err)
		}
		owner, err := uuid.Parse(ownerText)
		if err != nil {
			return nil, fmt.Errorf("parse owner id %q: %w", ownerText, err)
		}

		t.ID = id
		t.OwnerID = owner
		t.Status = domain.Status(status)
		t.Description = description.String

		if t.CreatedAt, err = time.Parse(time.RFC3339, createdText); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdText, err)
		}
		if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedText); err != nil {
			return nil, fmt.Errorf("parse updated_at %q: %w", updatedText, err)
		}
		if t.DueDate, err = parseOptionalTime(dueText); err != nil {
			return nil, fmt.Errorf("parse due_date: %w", err)
		}
		if t.StartAt, err = parseOptionalTime(startText); err != nil {
			return nil, fmt.Errorf("parse start_at: %w", err)
		}
		if t.EndAt, err = parseOptionalTime(endText); err != nil {
			return nil, fmt.Errorf("parse end_at: %w", err)
		}

		t.TimeSpent = domain.Round2(t.HoursSpent())
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func parseOptionalTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
