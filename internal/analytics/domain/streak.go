package domain

import "time"

// DailyCompletion is the completion count for one creation date. Dates with
// no tasks created have no entry at all.
type DailyCompletion struct {
	Date      time.Time
	Completed int
}

// CompletionStreak counts the consecutive days with at least one completed
// task, walking backward from the most recent date. Days must be ordered most
// recent first. The walk stops at the first day with zero completions; a
// calendar gap between entries stops it the same way.
func CompletionStreak(days []DailyCompletion) int {
	streak := 0
	var prev time.Time

	for i, day := range days {
		if day.Completed == 0 {
			break
		}
		if i > 0 && !sameDay(day.Date, prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = day.Date
	}

	return streak
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
