package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklens/tasklens/internal/analytics/domain"
	"github.com/tasklens/tasklens/internal/shared/infrastructure/database"
	"github.com/tasklens/tasklens/internal/shared/infrastructure/database/sqlite"
	"github.com/tasklens/tasklens/internal/shared/infrastructure/migrations"
)

func setupTestDB(t *testing.T) database.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.RunSQLite(ctx, conn))
	return conn
}

type seedTask struct {
	title       string
	description string
	status      domain.Status
	createdAt   time.Time
	dueDate     *time.Time
	startAt     *time.Time
	endAt       *time.Time
}

func insertTask(t *testing.T, conn database.Connection, ownerID uuid.UUID, task seedTask) {
	t.Helper()

	format := func(ts *time.Time) any {
		if ts == nil {
			return nil
		}
		return ts.UTC().Format(time.RFC3339)
	}

	_, err := conn.Exec(context.Background(), `
		INSERT INTO tasks (id, owner_id, title, description, status, due_date, created_at, updated_at, start_at, end_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		uuid.New().String(),
		ownerID.String(),
		task.title,
		task.description,
		string(task.status),
		format(task.dueDate),
		task.createdAt.UTC().Format(time.RFC3339),
		task.createdAt.UTC().Format(time.RFC3339),
		format(task.startAt),
		format(task.endAt),
	)
	require.NoError(t, err)
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}

func TestSQLiteReader_WindowStatistics(t *testing.T) {
	conn := setupTestDB(t)
	reader := NewSQLiteReader(conn)
	ownerID := uuid.New()
	now := time.Now().UTC()

	// Completed with 2h tracked.
	insertTask(t, conn, ownerID, seedTask{
		title:     "Fix login bug",
		status:    domain.StatusCompleted,
		createdAt: now.Add(-48 * time.Hour),
		startAt:   timePtr(now.Add(-48 * time.Hour)),
		endAt:     timePtr(now.Add(-46 * time.Hour)),
	})
	// In progress, no tracked time.
	insertTask(t, conn, ownerID, seedTask{
		title:     "Write onboarding doc",
		status:    domain.StatusInProgress,
		createdAt: now.Add(-24 * time.Hour),
	})
	// Todo, overdue yesterday.
	insertTask(t, conn, ownerID, seedTask{
		title:     "Renew certificate",
		status:    domain.StatusTodo,
		createdAt: now.Add(-72 * time.Hour),
		dueDate:   timePtr(now.Add(-24 * time.Hour)),
	})
	// Other owner's task must not leak in.
	insertTask(t, conn, uuid.New(), seedTask{
		title:     "Someone else's task",
		status:    domain.StatusCompleted,
		createdAt: now.Add(-24 * time.Hour),
	})

	stats, err := reader.WindowStatistics(context.Background(), ownerID, now.Add(-60*24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 1, stats.InProgressTasks)
	assert.Equal(t, 1, stats.TodoTasks)
	assert.Equal(t, 1, stats.OverdueTasks)
	assert.InDelta(t, 2.0, stats.TotalTimeSpentHours, 0.01)
	assert.InDelta(t, 2.0, stats.AvgTimePerTaskHours, 0.01)
	assert.InDelta(t, 33.3, stats.CompletionRate, 0.01)
}

func TestSQLiteReader_WindowStatistics_EmptyStore(t *testing.T) {
	conn := setupTestDB(t)
	reader := NewSQLiteReader(conn)

	stats, err := reader.WindowStatistics(context.Background(), uuid.New(), time.Now().Add(-60*24*time.Hour))
	require.NoError(t, err)

	assert.True(t, stats.IsEmpty())
	assert.Zero(t, stats.CompletionRate)
	assert.Zero(t, stats.TotalTimeSpentHours)
}

func TestSQLiteReader_RangeStatistics(t *testing.T) {
	conn := setupTestDB(t)
	reader := NewSQLiteReader(conn)
	ownerID := uuid.New()

	start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	// Due inside the month and never finished: overdue for the range.
	insertTask(t, conn, ownerID, seedTask{
		title:     "Quarterly planning",
		status:    domain.StatusTodo,
		createdAt: start.Add(24 * time.Hour),
		dueDate:   timePtr(start.Add(10 * 24 * time.Hour)),
	})
	// Due after the range's upper bound: not overdue for this month.
	insertTask(t, conn, ownerID, seedTask{
		title:     "Design review deck",
		status:    domain.StatusInProgress,
		createdAt: start.Add(48 * time.Hour),
		dueDate:   timePtr(end.Add(5 * 24 * time.Hour)),
	})
	// Created the following month: out of range.
	insertTask(t, conn, ownerID, seedTask{
		title:     "August kick-off",
		status:    domain.StatusCompleted,
		createdAt: end.Add(time.Hour),
	})

	stats, err := reader.RangeStatistics(context.Background(), ownerID, start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 0, stats.CompletedTasks)
	assert.Equal(t, 1, stats.OverdueTasks)
}

func TestSQLiteReader_TasksSince(t *testing.T) {
	conn := setupTestDB(t)
	reader := NewSQLiteReader(conn)
	ownerID := uuid.New()
	now := time.Now().UTC()

	insertTask(t, conn, ownerID, seedTask{
		title:       "Older task",
		description: "created first",
		status:      domain.StatusCompleted,
		createdAt:   now.Add(-48 * time.Hour),
		startAt:     timePtr(now.Add(-48 * time.Hour)),
		endAt:       timePtr(now.Add(-47 * time.Hour)),
	})
	insertTask(t, conn, ownerID, seedTask{
		title:     "Newer task",
		status:    domain.StatusTodo,
		createdAt: now.Add(-1 * time.Hour),
	})
	insertTask(t, conn, ownerID, seedTask{
		title:     "Ancient task",
		status:    domain.StatusCompleted,
		createdAt: now.Add(-90 * 24 * time.Hour),
	})

	tasks, err := reader.TasksSince(context.Background(), ownerID, now.Add(-60*24*time.Hour))
	require.NoError(t, err)

	require.Len(t, tasks, 2)
	assert.Equal(t, "Newer task", tasks[0].Title)
	assert.Equal(t, "Older task", tasks[1].Title)
	assert.InDelta(t, 1.0, tasks[1].TimeSpent, 0.01)
	assert.Equal(t, "created first", tasks[1].Description)
	assert.Equal(t, ownerID, tasks[0].OwnerID)
	assert.Nil(t, tasks[0].StartAt)
}

func TestSQLiteReader_TasksInRange(t *testing.T) {
	conn := setupTestDB(t)
	reader := NewSQLiteReader(conn)
	ownerID := uuid.New()

	start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	insertTask(t, conn, ownerID, seedTask{
		title:     "In range",
		status:    domain.StatusTodo,
		createdAt: start.Add(12 * time.Hour),
	})
	insertTask(t, conn, ownerID, seedTask{
		title:     "At upper bound",
		status:    domain.StatusTodo,
		createdAt: end,
	})

	tasks, err := reader.TasksInRange(context.Background(), ownerID, start, end)
	require.NoError(t, err)

	require.Len(t, tasks, 1)
	assert.Equal(t, "In range", tasks[0].Title)
}

func TestSQLiteReader_DailyCompletions(t *testing.T) {
	conn := setupTestDB(t)
	reader := NewSQLiteReader(conn)
	ownerID := uuid.New()

	day1 := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.August, 12, 14, 0, 0, 0, time.UTC)

	insertTask(t, conn, ownerID, seedTask{title: "a", status: domain.StatusCompleted, createdAt: day1})
	insertTask(t, conn, ownerID, seedTask{title: "b", status: domain.StatusCompleted, createdAt: day1.Add(2 * time.Hour)})
	insertTask(t, conn, ownerID, seedTask{title: "c", status: domain.StatusTodo, createdAt: day2})
	insertTask(t, conn, ownerID, seedTask{title: "d", status: domain.StatusCompleted, createdAt: day2.Add(time.Hour)})

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	days, err := reader.DailyCompletions(context.Background(), ownerID, start, end)
	require.NoError(t, err)

	require.Len(t, days, 2)
	assert.Equal(t, "2026-08-12", days[0].Date.Format("2006-01-02"))
	assert.Equal(t, 1, days[0].Completed)
	assert.Equal(t, "2026-08-10", days[1].Date.Format("2006-01-02"))
	assert.Equal(t, 2, days[1].Completed)
}
