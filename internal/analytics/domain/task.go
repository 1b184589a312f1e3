// Package domain contains the domain model for the analytics bounded context.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task in the task store.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// TaskRecord is a read-only task row from the task store. The analytics
// context never mutates tasks; ownership stays with the task-management
// backend.
type TaskRecord struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	StartAt     *time.Time `json:"start_at,omitempty"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	TimeSpent   float64    `json:"time_spent_hours"`
	OwnerID     uuid.UUID  `json:"owner_id"`
}

// HasTrackedTime reports whether both start and end timestamps are present.
func (t TaskRecord) HasTrackedTime() bool {
	return t.StartAt != nil && t.EndAt != nil
}

// HoursSpent returns the tracked duration in hours. Tasks missing either
// timestamp report zero.
func (t TaskRecord) HoursSpent() float64 {
	if !t.HasTrackedTime() {
		return 0
	}
	return t.EndAt.Sub(*t.StartAt).Hours()
}

// IsCompleted reports whether the task has reached the completed status.
func (t TaskRecord) IsCompleted() bool {
	return t.Status == StatusCompleted
}
