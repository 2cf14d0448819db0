package task

import "errors"

// Task-related errors
var (
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrInvalidID       = errors.New("invalid task ID")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidDueDate  = errors.New("due date must be YYYY-MM-DD")
	ErrTaskNotFound    = errors.New("task not found")
)
