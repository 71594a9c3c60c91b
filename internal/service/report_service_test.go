package service

import (
	"context"
	"testing"

	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

func newTestReportService(reports *fakeReportRepo, templates *fakeTemplateRepo) *ReportService {
	return NewReportService(ReportDependencies{
		ReportRepo:   reports,
		TemplateRepo: templates,
	})
}

func testUser(id string, role domain.Role) *domain.User {
	return &domain.User{ID: id, WorkspaceID: "ws-main", Role: role, Status: domain.UserStatusActive}
}

func TestCreateDraftValidatesTemplate(t *testing.T) {
	reports := newFakeReportRepo()
	templates := newFakeTemplateRepo(
		domain.Template{ID: "tpl-ok", WorkspaceID: "ws-main", Name: "Weekly", IsActive: true},
		domain.Template{ID: "tpl-inactive", WorkspaceID: "ws-main", Name: "Old", IsActive: false},
		domain.Template{ID: "tpl-foreign", WorkspaceID: "ws-other", Name: "Foreign", IsActive: true},
	)
	svc := newTestReportService(reports, templates)
	author := testUser("u-author", domain.RoleMember)

	report, err := svc.CreateDraft(context.Background(), author, ReportCreateInput{TemplateID: "tpl-ok", Title: "week 1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.ReportStatusDraft {
		t.Errorf("new report status = %s, want DRAFT", report.Status)
	}

	if _, err := svc.CreateDraft(context.Background(), author, ReportCreateInput{TemplateID: "tpl-inactive", Title: "x"}); err == nil {
		t.Error("expected error for inactive template")
	}
	if _, err := svc.CreateDraft(context.Background(), author, ReportCreateInput{TemplateID: "tpl-foreign", Title: "x"}); err == nil {
		t.Error("expected error for template from another workspace")
	}
}

func TestSubmitStampsTimestampAndGuardsAuthor(t *testing.T) {
	reports := newFakeReportRepo()
	reports.add(domain.Report{ID: "r-1", WorkspaceID: "ws-main", AuthorID: "u-author", Status: domain.ReportStatusDraft})
	svc := newTestReportService(reports, newFakeTemplateRepo())

	if _, err := svc.Submit(context.Background(), testUser("u-other", domain.RoleMember), "r-1"); err == nil {
		t.Error("expected error when submitter is not the author")
	}

	report, err := svc.Submit(context.Background(), testUser("u-author", domain.RoleMember), "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.ReportStatusSubmitted {
		t.Errorf("status = %s, want SUBMITTED", report.Status)
	}
	if report.SubmittedAt == nil {
		t.Error("SubmittedAt not stamped")
	}

	// The lifecycle only moves forward.
	if _, err := svc.Submit(context.Background(), testUser("u-author", domain.RoleMember), "r-1"); err == nil {
		t.Error("expected error resubmitting a submitted report")
	}
}

func TestApproveRequiresReviewerRoleAndReviewState(t *testing.T) {
	reports := newFakeReportRepo()
	reports.add(domain.Report{ID: "r-1", WorkspaceID: "ws-main", AuthorID: "u-author", Status: domain.ReportStatusSubmitted})
	svc := newTestReportService(reports, newFakeTemplateRepo())

	if _, err := svc.Approve(context.Background(), testUser("u-member", domain.RoleMember), "r-1"); err == nil {
		t.Error("expected error for member reviewer")
	}
	if _, err := svc.Approve(context.Background(), testUser("u-admin", domain.RoleAdmin), "r-1"); err == nil {
		t.Error("expected error approving before review started")
	}

	if _, err := svc.StartReview(context.Background(), testUser("u-admin", domain.RoleAdmin), "r-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report, err := svc.Approve(context.Background(), testUser("u-admin", domain.RoleAdmin), "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.ReportStatusApproved {
		t.Errorf("status = %s, want APPROVED", report.Status)
	}
	if report.FinalizedAt == nil {
		t.Error("FinalizedAt not stamped")
	}

	// Approved is terminal.
	if _, err := svc.StartReview(context.Background(), testUser("u-admin", domain.RoleAdmin), "r-1"); err == nil {
		t.Error("expected error reopening a finalized report")
	}
}

func TestRejectFromReview(t *testing.T) {
	reports := newFakeReportRepo()
	reports.add(domain.Report{ID: "r-1", WorkspaceID: "ws-main", AuthorID: "u-author", Status: domain.ReportStatusUnderReview})
	svc := newTestReportService(reports, newFakeTemplateRepo())

	report, err := svc.Reject(context.Background(), testUser("u-owner", domain.RoleOwner), "r-1", "needs detail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.ReportStatusRejected {
		t.Errorf("status = %s, want REJECTED", report.Status)
	}
}

func TestListForWorkspaceRestrictsMembers(t *testing.T) {
	reports := newFakeReportRepo()
	reports.add(domain.Report{ID: "r-1", WorkspaceID: "ws-main", AuthorID: "u-member"})
	reports.add(domain.Report{ID: "r-2", WorkspaceID: "ws-main", AuthorID: "u-other"})
	svc := newTestReportService(reports, newFakeTemplateRepo())

	own, err := svc.ListForWorkspace(context.Background(), testUser("u-member", domain.RoleMember), repository.ReportFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own) != 1 || own[0].AuthorID != "u-member" {
		t.Errorf("member list = %+v, want only own reports", own)
	}

	all, err := svc.ListForWorkspace(context.Background(), testUser("u-admin", domain.RoleAdmin), repository.ReportFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d reports, want 2", len(all))
	}
}
