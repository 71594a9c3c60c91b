package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/analytics"
	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/observability"
	"github.com/spec-kit/workspace-hub/internal/persistence"
)

type fakeTicketRepo struct {
	byRequester map[string][]domain.Ticket
}

func (f *fakeTicketRepo) Create(_ context.Context, _ *domain.Ticket) error { return nil }
func (f *fakeTicketRepo) Update(_ context.Context, _ *domain.Ticket) error { return nil }
func (f *fakeTicketRepo) GetByID(_ context.Context, _ string) (*domain.Ticket, error) {
	return nil, nil
}
func (f *fakeTicketRepo) ListByWorkspace(_ context.Context, _ string) ([]domain.Ticket, error) {
	return nil, nil
}
func (f *fakeTicketRepo) ListByRequester(_ context.Context, requesterID string) ([]domain.Ticket, error) {
	return f.byRequester[requesterID], nil
}

func newTestDashboardService(workspaces *fakeWorkspaceRepo, reports *fakeReportRepo, tasks *fakeTaskRepo, users *fakeUserRepo, tickets *fakeTicketRepo) *DashboardService {
	logger := zap.NewNop()
	return NewDashboardService(DashboardDependencies{
		Scope:      NewScopeResolver(workspaces, logger),
		Aggregator: newTestAggregator(workspaces, reports, tasks, users),
		TicketRepo: tickets,
		Scorer:     analytics.NewWeightedScorer(15, 10, 10, 100),
		Cache:      &persistence.Redis{},
		Metrics:    observability.NewMetrics(),
	}, time.Minute, logger)
}

func TestDashboardOverviewDerivesCounts(t *testing.T) {
	now := time.Now()
	recent := now.Add(-24 * time.Hour)
	stale := now.Add(-10 * 24 * time.Hour)

	workspaces := newFakeWorkspaceRepo(domain.Workspace{ID: "ws-main", Name: "Main"})
	reports := newFakeReportRepo()
	reports.add(domain.Report{ID: "r-1", WorkspaceID: "ws-main", Status: domain.ReportStatusApproved, CreatedAt: recent})
	reports.add(domain.Report{ID: "r-2", WorkspaceID: "ws-main", Status: domain.ReportStatusDraft, CreatedAt: recent})

	tasks := newFakeTaskRepo()
	tasks.add(domain.Task{ID: "t-1", WorkspaceID: "ws-main", AssigneeID: "u-1", Status: domain.TaskStatusCompleted, CompletedAt: &recent})
	tasks.add(domain.Task{ID: "t-2", WorkspaceID: "ws-main", AssigneeID: "u-1", Status: domain.TaskStatusCompleted, CompletedAt: &stale})
	tasks.add(domain.Task{ID: "t-3", WorkspaceID: "ws-main", AssigneeID: "u-1", Status: domain.TaskStatusOpen})

	users := newFakeUserRepo(domain.User{ID: "u-1", WorkspaceID: "ws-main", Role: domain.RoleMember})
	tickets := &fakeTicketRepo{byRequester: map[string][]domain.Ticket{}}

	svc := newTestDashboardService(workspaces, reports, tasks, users, tickets)
	caller := &domain.User{ID: "u-1", WorkspaceID: "ws-main", Role: domain.RoleMember}

	overview, err := svc.Overview(context.Background(), caller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if overview.ReportCount != 2 {
		t.Errorf("ReportCount = %d, want 2", overview.ReportCount)
	}
	if overview.ApprovalRate != 50 {
		t.Errorf("ApprovalRate = %d, want 50", overview.ApprovalRate)
	}
	if overview.TaskCount != 3 || overview.CompletedTasks != 2 {
		t.Errorf("tasks = %d completed of %d, want 2 of 3", overview.CompletedTasks, overview.TaskCount)
	}
	if overview.CompletionRate != 67 {
		t.Errorf("CompletionRate = %d, want 67", overview.CompletionRate)
	}
	if overview.MemberCount != 1 {
		t.Errorf("MemberCount = %d, want 1", overview.MemberCount)
	}
	// One task completed this week against one in the prior window.
	if overview.WeeklyProgress != 0 {
		t.Errorf("WeeklyProgress = %v, want 0", overview.WeeklyProgress)
	}
	// One completed task and two reports this week plus the synergy bonus:
	// 1*15 + 2*10 + 10 = 45.
	if overview.ActivityScore != 45 {
		t.Errorf("ActivityScore = %d, want 45", overview.ActivityScore)
	}
}

func TestDashboardOverviewEmptyWorkspace(t *testing.T) {
	workspaces := newFakeWorkspaceRepo(domain.Workspace{ID: "ws-main", Name: "Main"})
	svc := newTestDashboardService(workspaces, newFakeReportRepo(), newFakeTaskRepo(), newFakeUserRepo(), &fakeTicketRepo{})
	caller := &domain.User{ID: "u-1", WorkspaceID: "ws-main", Role: domain.RoleMember}

	overview, err := svc.Overview(context.Background(), caller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.ApprovalRate != 0 || overview.CompletionRate != 0 || overview.ActivityScore != 0 {
		t.Errorf("empty workspace rates should be zero, got %+v", overview)
	}
}

func TestDashboardOverviewCountsTicketActivity(t *testing.T) {
	now := time.Now()
	recent := now.Add(-24 * time.Hour)
	workspaces := newFakeWorkspaceRepo(domain.Workspace{ID: "ws-main", Name: "Main"})
	tickets := &fakeTicketRepo{byRequester: map[string][]domain.Ticket{
		"u-1": {
			{ID: "tk-1", CreatedAt: recent},
			{ID: "tk-2", CreatedAt: now.Add(-30 * 24 * time.Hour)},
		},
	}}

	svc := newTestDashboardService(workspaces, newFakeReportRepo(), newFakeTaskRepo(), newFakeUserRepo(), tickets)
	caller := &domain.User{ID: "u-1", WorkspaceID: "ws-main", Role: domain.RoleMember}

	overview, err := svc.Overview(context.Background(), caller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only the ticket raised this week feeds the score.
	if overview.ActivityScore != 1 {
		t.Errorf("ActivityScore = %d, want 1", overview.ActivityScore)
	}
}
