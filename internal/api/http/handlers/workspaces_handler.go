package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workspace-hub/internal/api/dto"
	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/service"
	apperrors "github.com/spec-kit/workspace-hub/pkg/util/errorutil"
)

// WorkspacesHandler exposes workspace directory endpoints.
type WorkspacesHandler struct {
	service *service.WorkspaceService
}

// NewWorkspacesHandler constructs handler.
func NewWorkspacesHandler(workspaceService *service.WorkspaceService) *WorkspacesHandler {
	return &WorkspacesHandler{service: workspaceService}
}

// CreateSub handles POST /workspaces/sub.
func (h *WorkspacesHandler) CreateSub(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateSubWorkspaceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.BranchID == "" || req.RegionID == "" {
		return apperrors.NewValidationError("name, branch_id, region_id required", nil)
	}

	ws, err := h.service.CreateSub(c.UserContext(), principal.User, service.SubWorkspaceInput{
		Name:     req.Name,
		BranchID: req.BranchID,
		RegionID: req.RegionID,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.WorkspaceFromDomain(ws)})
}

// ListAccessible handles GET /workspaces.
func (h *WorkspacesHandler) ListAccessible(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	accessible, err := h.service.ListAccessible(c.UserContext(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AccessibleFromDomain(accessible)})
}
