package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStatistics(t *testing.T) {
	t.Run("status counts add up to total", func(t *testing.T) {
		stats := NewStatistics(10, 4, 3, 3, 1, 12.5, 2.5)

		assert.Equal(t, stats.TotalTasks, stats.CompletedTasks+stats.InProgressTasks+stats.TodoTasks)
		assert.Equal(t, 40.0, stats.CompletionRate)
	})

	t.Run("zero tasks yields zero completion rate", func(t *testing.T) {
		stats := NewStatistics(0, 0, 0, 0, 0, 0, 0)

		assert.True(t, stats.IsEmpty())
		assert.Equal(t, 0.0, stats.CompletionRate)
	})

	t.Run("completion rate rounds to one decimal", func(t *testing.T) {
		// 1/3 = 33.333... -> 33.3
		stats := NewStatistics(3, 1, 1, 1, 0, 0, 0)
		assert.Equal(t, 33.3, stats.CompletionRate)

		// 2/3 = 66.666... -> 66.7
		stats = NewStatistics(3, 2, 0, 1, 0, 0, 0)
		assert.Equal(t, 66.7, stats.CompletionRate)
	})

	t.Run("hour figures round to two decimals", func(t *testing.T) {
		stats := NewStatistics(2, 1, 1, 0, 0, 3.14159, 1.5708)

		assert.Equal(t, 3.14, stats.TotalTimeSpentHours)
		assert.Equal(t, 1.57, stats.AvgTimePerTaskHours)
	})
}

func TestTaskRecord_HoursSpent(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	t.Run("both timestamps present", func(t *testing.T) {
		task := TaskRecord{StartAt: &start, EndAt: &end}
		assert.True(t, task.HasTrackedTime())
		assert.InDelta(t, 1.5, task.HoursSpent(), 0.0001)
	})

	t.Run("missing end timestamp contributes zero", func(t *testing.T) {
		task := TaskRecord{StartAt: &start}
		assert.False(t, task.HasTrackedTime())
		assert.Equal(t, 0.0, task.HoursSpent())
	})

	t.Run("missing both timestamps contributes zero", func(t *testing.T) {
		task := TaskRecord{}
		assert.Equal(t, 0.0, task.HoursSpent())
	})
}
