package genai

import (
	"context"
	"fmt"
	"strings"
)

// RuleResponder is the keyword-driven fallback used when no Gemini API key is
// configured. Answers are computed directly from the statistics.
type RuleResponder struct{}

// NewRuleResponder creates the rule-based fallback responder.
func NewRuleResponder() *RuleResponder {
	return &RuleResponder{}
}

// Answer matches the question against known keyword patterns, most specific
// first, and falls back to a general summary.
func (r *RuleResponder) Answer(_ context.Context, req Request) (string, error) {
	query := strings.ToLower(req.Query)
	stats := req.Stats

	switch {
	case strings.Contains(query, "time") && strings.Contains(query, "spent"):
		return fmt.Sprintf("You've spent a total of %.2f hours on tasks in the last 60 days.",
			stats.TotalTimeSpentHours), nil
	case strings.Contains(query, "overdue"):
		return fmt.Sprintf("You have %d overdue tasks that need attention.",
			stats.OverdueTasks), nil
	case strings.Contains(query, "completion") || strings.Contains(query, "completed"):
		return fmt.Sprintf("You've completed %d tasks with a %.1f%% completion rate.",
			stats.CompletedTasks, stats.CompletionRate), nil
	default:
		return fmt.Sprintf("Based on your task data: You have %d total tasks, %d completed, and %d in progress.",
			stats.TotalTasks, stats.CompletedTasks, stats.InProgressTasks), nil
	}
}
