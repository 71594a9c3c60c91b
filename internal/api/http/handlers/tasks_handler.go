package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workspace-hub/internal/api/dto"
	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/service"
	apperrors "github.com/spec-kit/workspace-hub/pkg/util/errorutil"
)

// TasksHandler manages task endpoints.
type TasksHandler struct {
	service *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{service: taskService}
}

// Create POST /tasks.
func (h *TasksHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.AssigneeID == "" || strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("assignee_id and title required", nil)
	}

	task, err := h.service.Create(c.UserContext(), principal.User, service.TaskCreateInput{
		AssigneeID: req.AssigneeID,
		Title:      req.Title,
		Priority:   req.Priority,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.TaskFromDomain(task)})
}

// Complete POST /tasks/:id/complete.
func (h *TasksHandler) Complete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	task, err := h.service.Complete(c.UserContext(), principal.User, c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"data": dto.TaskFromDomain(task)})
}

// List GET /tasks.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	tasks, err := h.service.ListForWorkspace(c.UserContext(), principal.User)
	if err != nil {
		return err
	}
	items := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, dto.TaskFromDomain(&tasks[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
