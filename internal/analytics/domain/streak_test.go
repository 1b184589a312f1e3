package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompletionStreak(t *testing.T) {
	tests := []struct {
		name     string
		days     []DailyCompletion
		expected int
	}{
		{
			name:     "no data yields zero",
			days:     nil,
			expected: 0,
		},
		{
			name: "zero completions on most recent day",
			days: []DailyCompletion{
				{Date: day(2025, 3, 10), Completed: 0},
				{Date: day(2025, 3, 9), Completed: 3},
			},
			expected: 0,
		},
		{
			name: "three consecutive days then a zero day",
			days: []DailyCompletion{
				{Date: day(2025, 3, 10), Completed: 2},
				{Date: day(2025, 3, 9), Completed: 1},
				{Date: day(2025, 3, 8), Completed: 4},
				{Date: day(2025, 3, 7), Completed: 0},
				{Date: day(2025, 3, 6), Completed: 2},
			},
			expected: 3,
		},
		{
			name: "calendar gap stops the streak like a zero day",
			days: []DailyCompletion{
				{Date: day(2025, 3, 10), Completed: 2},
				{Date: day(2025, 3, 9), Completed: 1},
				{Date: day(2025, 3, 7), Completed: 5},
			},
			expected: 2,
		},
		{
			name: "streak spans a month boundary",
			days: []DailyCompletion{
				{Date: day(2025, 3, 1), Completed: 1},
				{Date: day(2025, 2, 28), Completed: 1},
				{Date: day(2025, 2, 27), Completed: 1},
			},
			expected: 3,
		},
		{
			name: "single day with completions",
			days: []DailyCompletion{
				{Date: day(2025, 3, 10), Completed: 1},
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompletionStreak(tt.days))
		})
	}
}
