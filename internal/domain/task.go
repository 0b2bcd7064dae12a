package domain

import (
	"errors"
	"time"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitleRequired = errors.New("task title is required")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task belongs to a project; it carries no owner of its own. The effective
// owner is always the owner of the project it points to, resolved at
// operation time.
type Task struct {
	ID        string
	ProjectID string
	Title     string
	Status    TaskStatus
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
