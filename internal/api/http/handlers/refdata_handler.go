package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workspace-hub/internal/api/dto"
	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/repository"
	apperrors "github.com/spec-kit/workspace-hub/pkg/util/errorutil"
)

// RefDataHandler serves the workspace-scoped dimension listings used to
// populate filter dropdowns.
type RefDataHandler struct {
	departments repository.DepartmentRepository
	templates   repository.TemplateRepository
	branches    repository.BranchRepository
	regions     repository.RegionRepository
}

// NewRefDataHandler constructs handler.
func NewRefDataHandler(
	departments repository.DepartmentRepository,
	templates repository.TemplateRepository,
	branches repository.BranchRepository,
	regions repository.RegionRepository,
) *RefDataHandler {
	return &RefDataHandler{
		departments: departments,
		templates:   templates,
		branches:    branches,
		regions:     regions,
	}
}

// Departments GET /departments.
func (h *RefDataHandler) Departments(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	departments, err := h.departments.ListByWorkspace(c.UserContext(), principal.User.WorkspaceID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DepartmentsFromDomain(departments)})
}

// Templates GET /templates.
func (h *RefDataHandler) Templates(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	templates, err := h.templates.ListByWorkspace(c.UserContext(), principal.User.WorkspaceID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TemplatesFromDomain(templates)})
}

// Branches GET /branches.
func (h *RefDataHandler) Branches(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	branches, err := h.branches.ListByWorkspace(c.UserContext(), principal.User.WorkspaceID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BranchesFromDomain(branches)})
}

// Regions GET /regions.
func (h *RefDataHandler) Regions(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	regions, err := h.regions.ListByWorkspace(c.UserContext(), principal.User.WorkspaceID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RegionsFromDomain(regions)})
}
