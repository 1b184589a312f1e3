package domain

import "math"

// MonthlySummary is the caller-facing monthly report. Field names are part of
// the wire contract with the presentation layer and must not change.
type MonthlySummary struct {
	MonthName      string           `json:"monthName"`
	IsCurrentMonth bool             `json:"isCurrentMonth"`
	Overview       SummaryOverview  `json:"overview"`
	Categories     []CategoryBucket `json:"categories"`
	Error          string           `json:"error,omitempty"`
}

// SummaryOverview is the headline metrics block of a monthly summary.
type SummaryOverview struct {
	TasksCreated      int     `json:"tasksCreated"`
	TasksCompleted    int     `json:"tasksCompleted"`
	TotalTimeSpent    int     `json:"totalTimeSpent"`
	CompletionRate    float64 `json:"completionRate"`
	ProductivityScore int     `json:"productivityScore"`
	AvgTaskTime       float64 `json:"avgTaskTime"`
	OverdueTasks      int     `json:"overdueTasks"`
	StreakDays        int     `json:"streakDays"`
}

// NewMonthlySummary assembles a summary from computed metrics. Total time is
// rounded to whole hours, average task time to one decimal.
func NewMonthlySummary(monthName string, isCurrent bool, stats Statistics, streakDays int, categories []CategoryBucket) MonthlySummary {
	if categories == nil {
		categories = []CategoryBucket{}
	}
	return MonthlySummary{
		MonthName:      monthName,
		IsCurrentMonth: isCurrent,
		Overview: SummaryOverview{
			TasksCreated:      stats.TotalTasks,
			TasksCompleted:    stats.CompletedTasks,
			TotalTimeSpent:    int(math.Round(stats.TotalTimeSpentHours)),
			CompletionRate:    stats.CompletionRate,
			ProductivityScore: ProductivityScore(stats),
			AvgTaskTime:       Round1(stats.AvgTimePerTaskHours),
			OverdueTasks:      stats.OverdueTasks,
			StreakDays:        streakDays,
		},
		Categories: categories,
	}
}

// ZeroMonthlySummary is the degraded summary shape returned when assembly
// fails. The error text is for the caller; the metrics are all zero.
func ZeroMonthlySummary(errText string) MonthlySummary {
	return MonthlySummary{
		MonthName:      "Unknown",
		IsCurrentMonth: false,
		Categories:     []CategoryBucket{},
		Error:          errText,
	}
}
