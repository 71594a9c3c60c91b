package dto

import (
	"time"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// CreateReportRequest payload.
type CreateReportRequest struct {
	TemplateID string `json:"template_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}

// RejectReportRequest payload carrying the reviewer comment.
type RejectReportRequest struct {
	Comment string `json:"comment"`
}

// ReportResponse projects a report for API output.
type ReportResponse struct {
	ID          string              `json:"id"`
	WorkspaceID string              `json:"workspace_id"`
	AuthorID    string              `json:"author_id"`
	TemplateID  string              `json:"template_id"`
	Title       string              `json:"title"`
	Body        string              `json:"body,omitempty"`
	Status      domain.ReportStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	SubmittedAt *time.Time          `json:"submitted_at,omitempty"`
	FinalizedAt *time.Time          `json:"finalized_at,omitempty"`
}

// ReportFromDomain maps a domain report to its response shape.
func ReportFromDomain(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		WorkspaceID: report.WorkspaceID,
		AuthorID:    report.AuthorID,
		TemplateID:  report.TemplateID,
		Title:       report.Title,
		Body:        report.Body,
		Status:      report.Status,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
		SubmittedAt: report.SubmittedAt,
		FinalizedAt: report.FinalizedAt,
	}
}
