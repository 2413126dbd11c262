package domain

import (
	"errors"
	"time"
)

// TaskPriority is the urgency level assigned to a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In-progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusUrgent     TaskStatus = "Urgent"
	StatusPlanned    TaskStatus = "Planned"
	StatusScheduled  TaskStatus = "Scheduled"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrTaskForbidden = errors.New("not permitted to modify this task")
var ErrTaskInvalid = errors.New("title and due date are required")

var validPriorities = map[TaskPriority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
}

var validStatuses = map[TaskStatus]struct{}{
	StatusPending:    {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusUrgent:     {},
	StatusPlanned:    {},
	StatusScheduled:  {},
}

// IsValid reports whether p is one of the known priority levels.
func (p TaskPriority) IsValid() bool {
	_, ok := validPriorities[p]
	return ok
}

// IsValid reports whether s is one of the known lifecycle states.
func (s TaskStatus) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     time.Time    `json:"due_date"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	UserID      string       `json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
