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

// TeamsHandler manages team endpoints.
type TeamsHandler struct {
	service *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{service: teamService}
}

// Create POST /teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || req.LeadID == "" {
		return apperrors.NewValidationError("name and lead_id required", nil)
	}

	team, err := h.service.Create(c.UserContext(), principal.User, service.TeamCreateInput{
		Name:     req.Name,
		LeadID:   req.LeadID,
		BranchID: req.BranchID,
		RegionID: req.RegionID,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.TeamFromDomain(team)})
}

// AddMember POST /teams/:id/members.
func (h *TeamsHandler) AddMember(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.AddTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" {
		return apperrors.NewValidationError("user_id required", nil)
	}
	member, err := h.service.AddMember(c.UserContext(), principal.User, c.Params("id"), req.UserID)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": member})
}

// List GET /teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	teams, err := h.service.ListForWorkspace(c.UserContext(), principal.User)
	if err != nil {
		return err
	}
	items := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, dto.TeamFromDomain(&teams[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Overview GET /teams/overview.
func (h *TeamsHandler) Overview(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	overview, err := h.service.Overview(c.UserContext(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview})
}
