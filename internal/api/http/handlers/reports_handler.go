package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workspace-hub/internal/api/dto"
	"github.com/spec-kit/workspace-hub/internal/auth"
	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
	"github.com/spec-kit/workspace-hub/internal/service"
	apperrors "github.com/spec-kit/workspace-hub/pkg/util/errorutil"
)

// ReportsHandler manages the report lifecycle endpoints.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Create POST /reports.
func (h *ReportsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TemplateID == "" || strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("template_id and title required", nil)
	}

	report, err := h.service.CreateDraft(c.UserContext(), principal.User, service.ReportCreateInput{
		TemplateID: req.TemplateID,
		Title:      req.Title,
		Body:       req.Body,
	})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ReportFromDomain(report)})
}

// List GET /reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	reports, err := h.service.ListForWorkspace(c.UserContext(), principal.User, parseReportQuery(c))
	if err != nil {
		return err
	}
	items := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.ReportFromDomain(&reports[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /reports/:id.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	report, err := h.service.Get(c.UserContext(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ReportFromDomain(report)})
}

// Submit POST /reports/:id/submit.
func (h *ReportsHandler) Submit(c *fiber.Ctx) error {
	return h.transition(c, func(user *domain.User, id string) (*domain.Report, error) {
		return h.service.Submit(c.UserContext(), user, id)
	})
}

// StartReview POST /reports/:id/review.
func (h *ReportsHandler) StartReview(c *fiber.Ctx) error {
	return h.transition(c, func(user *domain.User, id string) (*domain.Report, error) {
		return h.service.StartReview(c.UserContext(), user, id)
	})
}

// Approve POST /reports/:id/approve.
func (h *ReportsHandler) Approve(c *fiber.Ctx) error {
	return h.transition(c, func(user *domain.User, id string) (*domain.Report, error) {
		return h.service.Approve(c.UserContext(), user, id)
	})
}

// Reject POST /reports/:id/reject.
func (h *ReportsHandler) Reject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.RejectReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	report, err := h.service.Reject(c.UserContext(), principal.User, c.Params("id"), req.Comment)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"data": dto.ReportFromDomain(report)})
}

func (h *ReportsHandler) transition(c *fiber.Ctx, op func(*domain.User, string) (*domain.Report, error)) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	report, err := op(principal.User, c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"data": dto.ReportFromDomain(report)})
}

func parseReportQuery(c *fiber.Ctx) repository.ReportFilter {
	filter := repository.ReportFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.ReportStatus(strings.TrimSpace(part)))
		}
	}
	if templateID := c.Query("template_id"); templateID != "" {
		filter.TemplateID = &templateID
	}
	if from := parseTime(c.Query("created_from")); from != nil {
		filter.CreatedFrom = from
	}
	if to := parseTime(c.Query("created_to")); to != nil {
		filter.CreatedTo = to
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize
	return filter
}

func parseTime(val string) *time.Time {
	if val == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil
	}
	return &t
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
