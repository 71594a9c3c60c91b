package dto

import (
	"time"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// CreateTaskRequest payload.
type CreateTaskRequest struct {
	AssigneeID string              `json:"assignee_id"`
	Title      string              `json:"title"`
	Priority   domain.TaskPriority `json:"priority"`
	DueDate    *time.Time          `json:"due_date,omitempty"`
}

// TaskResponse projects a task for API output.
type TaskResponse struct {
	ID          string              `json:"id"`
	WorkspaceID string              `json:"workspace_id"`
	AssigneeID  string              `json:"assignee_id"`
	CreatedBy   string              `json:"created_by"`
	Title       string              `json:"title"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}

// TaskFromDomain maps a domain task to its response shape.
func TaskFromDomain(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		WorkspaceID: task.WorkspaceID,
		AssigneeID:  task.AssigneeID,
		CreatedBy:   task.CreatedBy,
		Title:       task.Title,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		CompletedAt: task.CompletedAt,
	}
}
