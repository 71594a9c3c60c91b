package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/events"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// TaskService coordinates task workflows.
type TaskService struct {
	tasks      repository.TaskRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TaskCreateInput describes task creation payload.
type TaskCreateInput struct {
	AssigneeID string
	Title      string
	Priority   domain.TaskPriority
	DueDate    *time.Time
}

// NewTaskService constructs the service.
func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository, dispatcher events.Dispatcher) *TaskService {
	return &TaskService{tasks: tasks, users: users, dispatcher: dispatcher}
}

// Create creates a task assigned to a workspace member.
func (s *TaskService) Create(ctx context.Context, creator *domain.User, input TaskCreateInput) (*domain.Task, error) {
	assignee, err := s.users.GetByID(ctx, input.AssigneeID)
	if err != nil {
		return nil, err
	}
	if assignee.WorkspaceID != creator.WorkspaceID {
		return nil, errors.New("assignee not part of workspace")
	}

	task := &domain.Task{
		WorkspaceID: creator.WorkspaceID,
		AssigneeID:  input.AssigneeID,
		CreatedBy:   creator.ID,
		Title:       strings.TrimSpace(input.Title),
		Status:      domain.TaskStatusOpen,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Complete marks a task completed and stamps CompletedAt.
func (s *TaskService) Complete(ctx context.Context, actor *domain.User, taskID string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.WorkspaceID != actor.WorkspaceID {
		return nil, errors.New("access denied")
	}
	if task.AssigneeID != actor.ID && actor.Role == domain.RoleMember {
		return nil, errors.New("access denied")
	}
	if task.Status == domain.TaskStatusCompleted {
		return nil, errors.New("task already completed")
	}

	now := time.Now()
	task.Status = domain.TaskStatusCompleted
	task.CompletedAt = &now
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:          uuid.NewString(),
			Type:        events.EventTaskCompleted,
			WorkspaceID: task.WorkspaceID,
			ActorID:     actor.ID,
			Timestamp:   now,
			Payload: events.TaskCompletedPayload{
				TaskID:     task.ID,
				AssigneeID: task.AssigneeID,
			},
		})
	}
	return task, nil
}

// ListForWorkspace returns workspace tasks; members see only their own.
func (s *TaskService) ListForWorkspace(ctx context.Context, caller *domain.User) ([]domain.Task, error) {
	if caller.Role == domain.RoleMember {
		return s.tasks.ListByAssignee(ctx, caller.ID)
	}
	return s.tasks.ListByWorkspace(ctx, caller.WorkspaceID)
}
