package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/service"
	apperrors "github.com/spec-kit/workspace-hub/pkg/util/errorutil"
)

// AnalyticsHandler serves the cross-workspace report analytics view.
type AnalyticsHandler struct {
	service *service.ReportAnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.ReportAnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// ReportAnalytics GET /reports/analytics.
func (h *AnalyticsHandler) ReportAnalytics(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	query := service.AnalyticsQuery{
		TemplateID: c.Query("template_id"),
		AuthorID:   c.Query("author_id"),
		From:       parseTime(c.Query("from")),
		To:         parseTime(c.Query("to")),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			query.Statuses = append(query.Statuses, domain.ReportStatus(strings.TrimSpace(part)))
		}
	}

	result, err := h.service.Analyze(c.UserContext(), principal.User, query)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}
