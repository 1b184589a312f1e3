package domain

import "math"

// ProductivityScore derives a 0-100 score from a statistics snapshot.
// The formula is fixed for compatibility with historical scores:
//
//	base:     completion rate * 0.5            (0-50)
//	duration: +20 for avg task time in [1,8]h, +10 for any other non-zero avg
//	volume:   +20 for >=20 tasks, +15 for >=10, +10 for >=5
//	penalty:  -(overdue/total)*10 when there are tasks
//
// clamped to [0,100] and rounded to the nearest integer.
func ProductivityScore(s Statistics) int {
	score := s.CompletionRate * 0.5

	if s.AvgTimePerTaskHours >= 1 && s.AvgTimePerTaskHours <= 8 {
		score += 20
	} else if s.AvgTimePerTaskHours > 0 {
		score += 10
	}

	switch {
	case s.TotalTasks >= 20:
		score += 20
	case s.TotalTasks >= 10:
		score += 15
	case s.TotalTasks >= 5:
		score += 10
	}

	if s.TotalTasks > 0 {
		score -= float64(s.OverdueTasks) / float64(s.TotalTasks) * 10
	}

	return int(math.Max(0, math.Min(100, math.Round(score))))
}
