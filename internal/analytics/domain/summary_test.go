package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthlySummary(t *testing.T) {
	stats := NewStatistics(12, 9, 2, 1, 1, 18.6, 2.07)
	categories := []CategoryBucket{{Name: "Development", Tasks: 8, TimeSpent: 14.0}}

	summary := NewMonthlySummary("March 2025", true, stats, 4, categories)

	assert.Equal(t, "March 2025", summary.MonthName)
	assert.True(t, summary.IsCurrentMonth)
	assert.Equal(t, 12, summary.Overview.TasksCreated)
	assert.Equal(t, 9, summary.Overview.TasksCompleted)
	assert.Equal(t, 19, summary.Overview.TotalTimeSpent) // rounded to whole hours
	assert.Equal(t, 75.0, summary.Overview.CompletionRate)
	assert.Equal(t, 2.1, summary.Overview.AvgTaskTime) // one decimal
	assert.Equal(t, 4, summary.Overview.StreakDays)
	assert.Equal(t, ProductivityScore(stats), summary.Overview.ProductivityScore)
	assert.Empty(t, summary.Error)
}

func TestNewMonthlySummary_NilCategories(t *testing.T) {
	summary := NewMonthlySummary("March 2025", false, Statistics{}, 0, nil)

	// The contract promises an array, never null.
	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"categories":[]`)
}

func TestMonthlySummary_JSONFieldNames(t *testing.T) {
	summary := NewMonthlySummary("March 2025", true, Statistics{}, 0, []CategoryBucket{
		{Name: "Other", Tasks: 1},
	})

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "monthName")
	assert.Contains(t, decoded, "isCurrentMonth")
	assert.Contains(t, decoded, "overview")
	assert.Contains(t, decoded, "categories")

	overview, ok := decoded["overview"].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{
		"tasksCreated", "tasksCompleted", "totalTimeSpent", "completionRate",
		"productivityScore", "avgTaskTime", "overdueTasks", "streakDays",
	} {
		assert.Contains(t, overview, field)
	}

	categories, ok := decoded["categories"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 1)
	bucket, ok := categories[0].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"name", "timeSpent", "tasks", "percentage", "avgTime", "completionRate"} {
		assert.Contains(t, bucket, field)
	}
}

func TestZeroMonthlySummary(t *testing.T) {
	summary := ZeroMonthlySummary("storage unavailable")

	assert.Equal(t, "Unknown", summary.MonthName)
	assert.False(t, summary.IsCurrentMonth)
	assert.Equal(t, 0, summary.Overview.TasksCreated)
	assert.Equal(t, 0, summary.Overview.ProductivityScore)
	assert.Empty(t, summary.Categories)
	assert.Equal(t, "storage unavailable", summary.Error)
}
