package domain

import "time"

// TaskStatus enumerates task states. Only COMPLETED is meaningful for the
// dashboard folds; everything else counts as open.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// TaskPriority enumerates urgency for tasks.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// Task is a unit of work assigned inside a workspace.
type Task struct {
	ID          string
	WorkspaceID string
	AssigneeID  string
	CreatedBy   string
	Title       string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}
