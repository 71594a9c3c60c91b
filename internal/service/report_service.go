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

// ReportService coordinates the report approval lifecycle.
type ReportService struct {
	reports    repository.ReportRepository
	templates  repository.TemplateRepository
	dispatcher events.Dispatcher
}

// ReportDependencies bundles repositories for the report service.
type ReportDependencies struct {
	ReportRepo   repository.ReportRepository
	TemplateRepo repository.TemplateRepository
	Dispatcher   events.Dispatcher
}

// ReportCreateInput describes report creation payload.
type ReportCreateInput struct {
	TemplateID string
	Title      string
	Body       string
}

// NewReportService constructs the service.
func NewReportService(deps ReportDependencies) *ReportService {
	return &ReportService{
		reports:    deps.ReportRepo,
		templates:  deps.TemplateRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateDraft creates a draft report for the author.
func (s *ReportService) CreateDraft(ctx context.Context, author *domain.User, input ReportCreateInput) (*domain.Report, error) {
	tpl, err := s.templates.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if !tpl.IsActive {
		return nil, errors.New("template inactive")
	}
	if tpl.WorkspaceID != author.WorkspaceID {
		return nil, errors.New("template not part of workspace")
	}

	report := &domain.Report{
		WorkspaceID: author.WorkspaceID,
		AuthorID:    author.ID,
		TemplateID:  input.TemplateID,
		Title:       strings.TrimSpace(input.Title),
		Body:        input.Body,
		Status:      domain.ReportStatusDraft,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Submit moves a draft into the review queue and stamps SubmittedAt.
func (s *ReportService) Submit(ctx context.Context, actor *domain.User, reportID string) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.AuthorID != actor.ID {
		return nil, errors.New("access denied")
	}
	if !domain.CanTransitionReport(report.Status, domain.ReportStatusSubmitted) {
		return nil, errors.New("invalid status transition")
	}

	now := time.Now()
	report.Status = domain.ReportStatusSubmitted
	report.SubmittedAt = &now
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventReportSubmitted,
		WorkspaceID: report.WorkspaceID,
		ActorID:     actor.ID,
		Payload: events.ReportSubmittedPayload{
			ReportID:   report.ID,
			TemplateID: report.TemplateID,
			Title:      report.Title,
		},
	})
	return report, nil
}

// StartReview marks a submitted report as under review. Requires an
// owner or admin.
func (s *ReportService) StartReview(ctx context.Context, reviewer *domain.User, reportID string) (*domain.Report, error) {
	report, err := s.loadForReview(ctx, reviewer, reportID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionReport(report.Status, domain.ReportStatusUnderReview) {
		return nil, errors.New("invalid status transition")
	}
	report.Status = domain.ReportStatusUnderReview
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventReportReviewStarted,
		WorkspaceID: report.WorkspaceID,
		ActorID:     reviewer.ID,
		Payload:     events.ReportFinalizedPayload{ReportID: report.ID, NewStatus: report.Status},
	})
	return report, nil
}

// Approve finalizes a report as approved and stamps FinalizedAt.
func (s *ReportService) Approve(ctx context.Context, reviewer *domain.User, reportID string) (*domain.Report, error) {
	return s.finalize(ctx, reviewer, reportID, domain.ReportStatusApproved, "")
}

// Reject finalizes a report as rejected with a comment.
func (s *ReportService) Reject(ctx context.Context, reviewer *domain.User, reportID, comment string) (*domain.Report, error) {
	return s.finalize(ctx, reviewer, reportID, domain.ReportStatusRejected, comment)
}

// ListForWorkspace returns reports matching the filter in the caller's
// workspace.
func (s *ReportService) ListForWorkspace(ctx context.Context, caller *domain.User, filter repository.ReportFilter) ([]domain.Report, error) {
	if caller.Role == domain.RoleMember {
		filter.AuthorID = &caller.ID
	}
	return s.reports.ListByWorkspace(ctx, caller.WorkspaceID, filter)
}

// Get fetches a report ensuring workspace access.
func (s *ReportService) Get(ctx context.Context, caller *domain.User, reportID string) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.WorkspaceID != caller.WorkspaceID {
		return nil, errors.New("access denied")
	}
	if caller.Role == domain.RoleMember && report.AuthorID != caller.ID {
		return nil, errors.New("access denied")
	}
	return report, nil
}

func (s *ReportService) finalize(ctx context.Context, reviewer *domain.User, reportID string, status domain.ReportStatus, comment string) (*domain.Report, error) {
	report, err := s.loadForReview(ctx, reviewer, reportID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionReport(report.Status, status) {
		return nil, errors.New("invalid status transition")
	}

	now := time.Now()
	report.Status = status
	report.FinalizedAt = &now
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventReportFinalized,
		WorkspaceID: report.WorkspaceID,
		ActorID:     reviewer.ID,
		Payload: events.ReportFinalizedPayload{
			ReportID:  report.ID,
			NewStatus: status,
			Comment:   comment,
		},
	})
	return report, nil
}

func (s *ReportService) loadForReview(ctx context.Context, reviewer *domain.User, reportID string) (*domain.Report, error) {
	if reviewer.Role != domain.RoleOwner && reviewer.Role != domain.RoleAdmin {
		return nil, errors.New("reviewer role required")
	}
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.WorkspaceID != reviewer.WorkspaceID {
		return nil, errors.New("access denied")
	}
	return report, nil
}

func (s *ReportService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
