package service

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

func newTestAggregator(workspaces *fakeWorkspaceRepo, reports *fakeReportRepo, tasks *fakeTaskRepo, users *fakeUserRepo) *Aggregator {
	return NewAggregator(AggregatorDependencies{
		WorkspaceRepo:  workspaces,
		ReportRepo:     reports,
		TaskRepo:       tasks,
		UserRepo:       users,
		TeamRepo:       newFakeTeamRepo(),
		TemplateRepo:   newFakeTemplateRepo(),
		DepartmentRepo: fakeDepartmentRepo{},
	}, zap.NewNop())
}

func TestCollectMergesAcrossWorkspaces(t *testing.T) {
	workspaces := newFakeWorkspaceRepo(
		domain.Workspace{ID: "ws-a", Name: "Alpha"},
		domain.Workspace{ID: "ws-b", Name: "Beta"},
	)
	reports := newFakeReportRepo()
	for i := 0; i < 3; i++ {
		reports.add(domain.Report{ID: fmt.Sprintf("r-a-%d", i), WorkspaceID: "ws-a"})
	}
	reports.add(domain.Report{ID: "r-b-0", WorkspaceID: "ws-b"})

	agg := newTestAggregator(workspaces, reports, newFakeTaskRepo(), newFakeUserRepo())
	snapshot := agg.Collect(context.Background(), []string{"ws-a", "ws-b"}, CollectOptions{Reports: true})

	if len(snapshot.Workspaces) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(snapshot.Workspaces))
	}
	if len(snapshot.Reports) != 4 {
		t.Errorf("expected 4 merged reports, got %d", len(snapshot.Reports))
	}
	for _, report := range snapshot.Reports {
		if report.WorkspaceID == "" || report.WorkspaceName == "" {
			t.Errorf("report %q missing workspace tag", report.Entity.ID)
		}
	}
}

func TestCollectDeduplicatesSharedEntities(t *testing.T) {
	workspaces := newFakeWorkspaceRepo(
		domain.Workspace{ID: "ws-a", Name: "Alpha"},
		domain.Workspace{ID: "ws-b", Name: "Beta"},
	)
	users := newFakeUserRepo(
		domain.User{ID: "u-shared", WorkspaceID: "ws-a"},
		domain.User{ID: "u-only-b", WorkspaceID: "ws-b"},
	)
	// The shared user is reachable from both workspaces.
	users.byWorkspace["ws-b"] = append(users.byWorkspace["ws-b"], users.users["u-shared"])

	agg := newTestAggregator(workspaces, newFakeReportRepo(), newFakeTaskRepo(), users)
	snapshot := agg.Collect(context.Background(), []string{"ws-a", "ws-b"}, CollectOptions{Users: true})

	if len(snapshot.Users) != 2 {
		t.Fatalf("expected 2 unique users, got %d", len(snapshot.Users))
	}
	for _, user := range snapshot.Users {
		if user.Entity.ID == "u-shared" && user.WorkspaceID != "ws-a" {
			t.Errorf("shared user tagged %q, want first workspace ws-a", user.WorkspaceID)
		}
	}
}

func TestCollectSkipsFailedWorkspace(t *testing.T) {
	workspaces := newFakeWorkspaceRepo(
		domain.Workspace{ID: "ws-a", Name: "Alpha"},
		domain.Workspace{ID: "ws-b", Name: "Beta"},
	)
	reports := newFakeReportRepo()
	for i := 0; i < 10; i++ {
		reports.add(domain.Report{ID: fmt.Sprintf("r-a-%d", i), WorkspaceID: "ws-a"})
	}
	reports.failIDs["ws-b"] = true

	agg := newTestAggregator(workspaces, reports, newFakeTaskRepo(), newFakeUserRepo())
	snapshot := agg.Collect(context.Background(), []string{"ws-a", "ws-b"}, CollectOptions{Reports: true})

	if len(snapshot.Workspaces) != 1 || snapshot.Workspaces[0].ID != "ws-a" {
		t.Fatalf("expected only ws-a to survive, got %+v", snapshot.Workspaces)
	}
	if len(snapshot.Reports) != 10 {
		t.Errorf("healthy workspace data lost: got %d reports, want 10", len(snapshot.Reports))
	}
}

func TestCollectSkipsUnknownWorkspace(t *testing.T) {
	workspaces := newFakeWorkspaceRepo(domain.Workspace{ID: "ws-a", Name: "Alpha"})

	agg := newTestAggregator(workspaces, newFakeReportRepo(), newFakeTaskRepo(), newFakeUserRepo())
	snapshot := agg.Collect(context.Background(), []string{"ws-a", "ws-missing"}, CollectOptions{Reports: true})

	if len(snapshot.Workspaces) != 1 {
		t.Errorf("expected unknown workspace to be skipped, got %d workspaces", len(snapshot.Workspaces))
	}
}
