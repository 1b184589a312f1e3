package domain

import (
	"sort"
	"strings"
)

// CategoryBucket accumulates per-category metrics for one classifier pass.
// JSON field names match the summary contract consumed by the frontend.
type CategoryBucket struct {
	Name           string  `json:"name"`
	TimeSpent      float64 `json:"timeSpent"`
	Tasks          int     `json:"tasks"`
	Percentage     float64 `json:"percentage"`
	AvgTime        float64 `json:"avgTime"`
	CompletionRate float64 `json:"completionRate"`
}

// CategoryOther is the fall-through bucket for tasks matching no keyword group.
const CategoryOther = "Other"

// categoryRule pairs a category name with its trigger keywords. Rules are
// evaluated top-down and the first match wins, so a task mentioning both
// "design" and "bug" lands in Development. The order is load-bearing; do not
// turn this into a map.
type categoryRule struct {
	name     string
	keywords []string
}

var categoryRules = []categoryRule{
	{name: "Development", keywords: []string{"dev", "code", "program", "bug"}},
	{name: "Design", keywords: []string{"design", "ui", "ux", "mockup"}},
	{name: "Meetings", keywords: []string{"meet", "call", "discuss", "review"}},
	{name: "Planning", keywords: []string{"plan", "research", "analyze", "document"}},
}

// Classify assigns a task to a category by case-insensitive substring match
// over title first, then description.
func Classify(title, description string) string {
	title = strings.ToLower(title)
	description = strings.ToLower(description)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(title, kw) || strings.Contains(description, kw) {
				return rule.name
			}
		}
	}
	return CategoryOther
}

// BuildCategoryBreakdown classifies each task and aggregates per-category
// metrics. Buckets with zero tasks are omitted and the result is ordered by
// descending time spent. Percentages are each bucket's share of the total
// time across buckets (all zero when no time was tracked).
func BuildCategoryBreakdown(tasks []TaskRecord) []CategoryBucket {
	type accumulator struct {
		tasks     int
		completed int
		hours     float64
		tracked   int
	}

	byName := make(map[string]*accumulator)
	for _, t := range tasks {
		name := Classify(t.Title, t.Description)
		acc := byName[name]
		if acc == nil {
			acc = &accumulator{}
			byName[name] = acc
		}
		acc.tasks++
		if t.IsCompleted() {
			acc.completed++
		}
		if t.HasTrackedTime() {
			acc.hours += t.HoursSpent()
			acc.tracked++
		}
	}

	var totalHours float64
	for _, acc := range byName {
		totalHours += acc.hours
	}

	buckets := make([]CategoryBucket, 0, len(byName))
	for name, acc := range byName {
		var avg float64
		if acc.tracked > 0 {
			avg = acc.hours / float64(acc.tracked)
		}
		var pct float64
		if totalHours > 0 {
			pct = Round1(acc.hours / totalHours * 100)
		}
		buckets = append(buckets, CategoryBucket{
			Name:           name,
			TimeSpent:      Round1(acc.hours),
			Tasks:          acc.tasks,
			Percentage:     pct,
			AvgTime:        Round2(avg),
			CompletionRate: completionRate(acc.completed, acc.tasks),
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].TimeSpent > buckets[j].TimeSpent
	})

	return buckets
}
