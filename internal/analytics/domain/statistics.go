package domain

import "math"

// Statistics is a snapshot of aggregate task metrics over one time window.
// It is derived on demand and never stored.
type Statistics struct {
	TotalTasks          int     `json:"total_tasks"`
	CompletedTasks      int     `json:"completed_tasks"`
	InProgressTasks     int     `json:"in_progress_tasks"`
	TodoTasks           int     `json:"todo_tasks"`
	OverdueTasks        int     `json:"overdue_tasks"`
	TotalTimeSpentHours float64 `json:"total_time_spent_hours"`
	AvgTimePerTaskHours float64 `json:"avg_time_per_task_hours"`
	CompletionRate      float64 `json:"completion_rate"`
}

// NewStatistics builds a snapshot from raw aggregates, applying the rounding
// rules: hour figures to two decimals, completion rate to one decimal.
// The completion rate is 0 when there are no tasks.
func NewStatistics(total, completed, inProgress, todo, overdue int, totalHours, avgHours float64) Statistics {
	return Statistics{
		TotalTasks:          total,
		CompletedTasks:      completed,
		InProgressTasks:     inProgress,
		TodoTasks:           todo,
		OverdueTasks:        overdue,
		TotalTimeSpentHours: Round2(totalHours),
		AvgTimePerTaskHours: Round2(avgHours),
		CompletionRate:      completionRate(completed, total),
	}
}

// IsEmpty reports whether the window contained no tasks at all.
func (s Statistics) IsEmpty() bool {
	return s.TotalTasks == 0
}

func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(completed) / float64(total) * 100)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
