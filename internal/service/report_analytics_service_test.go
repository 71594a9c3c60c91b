package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

func newTestAnalyticsService(workspaces *fakeWorkspaceRepo, reports *fakeReportRepo, templates *fakeTemplateRepo) *ReportAnalyticsService {
	logger := zap.NewNop()
	agg := NewAggregator(AggregatorDependencies{
		WorkspaceRepo:  workspaces,
		ReportRepo:     reports,
		TaskRepo:       newFakeTaskRepo(),
		UserRepo:       newFakeUserRepo(),
		TeamRepo:       newFakeTeamRepo(),
		TemplateRepo:   templates,
		DepartmentRepo: fakeDepartmentRepo{},
	}, logger)
	return NewReportAnalyticsService(NewScopeResolver(workspaces, logger), agg, 6, logger)
}

func TestAnalyzeDerivesBreakdowns(t *testing.T) {
	now := time.Now()
	submitted := now.Add(-10 * time.Hour)
	finalized := submitted.Add(4 * time.Hour)

	workspaces := newFakeWorkspaceRepo(domain.Workspace{ID: "ws-main", Name: "Main"})
	reports := newFakeReportRepo()
	reports.add(domain.Report{
		ID: "r-1", WorkspaceID: "ws-main", AuthorID: "u-1", TemplateID: "tpl-1",
		Status: domain.ReportStatusApproved, CreatedAt: now.Add(-24 * time.Hour),
		SubmittedAt: &submitted, FinalizedAt: &finalized,
	})
	reports.add(domain.Report{
		ID: "r-2", WorkspaceID: "ws-main", AuthorID: "u-1",
		Status: domain.ReportStatusDraft, CreatedAt: now.Add(-48 * time.Hour),
	})
	templates := newFakeTemplateRepo(domain.Template{ID: "tpl-1", WorkspaceID: "ws-main", Name: "Weekly", IsActive: true})

	svc := newTestAnalyticsService(workspaces, reports, templates)
	caller := &domain.User{ID: "u-1", Role: domain.RoleMember, WorkspaceID: "ws-main"}

	result, err := svc.Analyze(context.Background(), caller, AnalyticsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalReports != 2 {
		t.Errorf("total reports = %d, want 2", result.TotalReports)
	}
	if result.ApprovalRate != 50 {
		t.Errorf("approval rate = %d, want 50", result.ApprovalRate)
	}
	if result.AvgApprovalTime != 4 {
		t.Errorf("avg approval hours = %v, want 4", result.AvgApprovalTime)
	}
	if result.ByStatus[string(domain.ReportStatusApproved)] != 1 || result.ByStatus[string(domain.ReportStatusDraft)] != 1 {
		t.Errorf("status breakdown = %v", result.ByStatus)
	}
	if result.ByTemplate["Weekly"] != 1 || result.ByTemplate["Unassigned"] != 1 {
		t.Errorf("template breakdown = %v", result.ByTemplate)
	}
	if len(result.Daily) != 30 {
		t.Errorf("daily buckets = %d, want 30", len(result.Daily))
	}
	if len(result.MonthlyTrend) != 6 {
		t.Errorf("monthly trend buckets = %d, want 6", len(result.MonthlyTrend))
	}
}

func TestAnalyzeBucketsHonorQueryWindow(t *testing.T) {
	now := time.Now()
	from := now.AddDate(0, -3, 0)
	to := from.AddDate(0, 0, 9)
	inside := from.AddDate(0, 0, 4)

	workspaces := newFakeWorkspaceRepo(domain.Workspace{ID: "ws-main", Name: "Main"})
	reports := newFakeReportRepo()
	reports.add(domain.Report{
		ID: "r-old", WorkspaceID: "ws-main", AuthorID: "u-1",
		Status: domain.ReportStatusDraft, CreatedAt: inside,
	})
	reports.add(domain.Report{
		ID: "r-recent", WorkspaceID: "ws-main", AuthorID: "u-1",
		Status: domain.ReportStatusDraft, CreatedAt: now.Add(-time.Hour),
	})

	svc := newTestAnalyticsService(workspaces, reports, newFakeTemplateRepo())
	caller := &domain.User{ID: "u-1", Role: domain.RoleMember, WorkspaceID: "ws-main"}

	result, err := svc.Analyze(context.Background(), caller, AnalyticsQuery{From: &from, To: &to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalReports != 1 {
		t.Fatalf("total reports = %d, want 1 inside the window", result.TotalReports)
	}
	if len(result.Daily) != 10 {
		t.Fatalf("daily buckets = %d, want 10", len(result.Daily))
	}
	first := result.Daily[0].Date
	if first.Year() != from.Year() || first.YearDay() != from.YearDay() {
		t.Errorf("first bucket = %v, want window start %v", first, from)
	}
	counted := 0
	for _, bucket := range result.Daily {
		counted += bucket.Count
	}
	if counted != 1 {
		t.Errorf("window buckets counted %d reports, want 1", counted)
	}
}

func TestAnalyzeRestrictsMembersToOwnReports(t *testing.T) {
	workspaces := newFakeWorkspaceRepo(domain.Workspace{ID: "ws-main", Name: "Main"})
	reports := newFakeReportRepo()
	reports.add(domain.Report{ID: "r-1", WorkspaceID: "ws-main", AuthorID: "u-1", Status: domain.ReportStatusDraft})
	reports.add(domain.Report{ID: "r-2", WorkspaceID: "ws-main", AuthorID: "u-2", Status: domain.ReportStatusDraft})
	reports.add(domain.Report{ID: "r-3", WorkspaceID: "ws-main", AuthorID: "u-2", Status: domain.ReportStatusDraft})

	svc := newTestAnalyticsService(workspaces, reports, newFakeTemplateRepo())
	member := &domain.User{ID: "u-1", Role: domain.RoleMember, WorkspaceID: "ws-main"}

	result, err := svc.Analyze(context.Background(), member, AnalyticsQuery{AuthorID: "u-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the author filter of a member is always forced to the caller
	if result.TotalReports != 1 {
		t.Errorf("member sees %d reports, want 1", result.TotalReports)
	}
}
