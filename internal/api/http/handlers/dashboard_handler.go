package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/service"
	apperrors "github.com/spec-kit/workspace-hub/pkg/util/errorutil"
)

// DashboardHandler serves the role-scoped dashboard endpoint.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Overview GET /dashboard. Serves the cached snapshot when present unless
// refresh=true is passed.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	if !c.QueryBool("refresh") {
		cached, err := h.service.CachedOverview(c.UserContext(), principal.User.ID)
		if err == nil && cached != nil {
			return c.JSON(fiber.Map{"data": cached, "cached": true})
		}
	}

	overview, err := h.service.Overview(c.UserContext(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview, "cached": false})
}
