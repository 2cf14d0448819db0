package models

import "time"

// Priority of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status of a task
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the three known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is a todo item with an optional due date.
// Invariant: CompletedAt is non-nil exactly when Completed is true.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	DueDate     string     `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Due parses the task's due date, which the forms store as YYYY-MM-DD.
// Returns false when no valid due date is set.
func (t *Task) Due() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	due, err := time.ParseInLocation("2006-01-02", t.DueDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// Overdue reports whether the task's due date has passed and the task
// is still open, decided from this task's own Completed flag.
func (t *Task) Overdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := t.Due()
	if !ok {
		return false
	}
	return now.After(due)
}
