package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

func newTestTeamService(workspaces *fakeWorkspaceRepo, teams *fakeTeamRepo, users *fakeUserRepo, branches *fakeBranchRepo, regions *fakeRegionRepo) *TeamService {
	logger := zap.NewNop()
	agg := NewAggregator(AggregatorDependencies{
		WorkspaceRepo:  workspaces,
		ReportRepo:     newFakeReportRepo(),
		TaskRepo:       newFakeTaskRepo(),
		UserRepo:       users,
		TeamRepo:       teams,
		TemplateRepo:   newFakeTemplateRepo(),
		DepartmentRepo: fakeDepartmentRepo{},
	}, logger)
	return NewTeamService(TeamDependencies{
		TeamRepo:   teams,
		UserRepo:   users,
		BranchRepo: branches,
		RegionRepo: regions,
		Scope:      NewScopeResolver(workspaces, logger),
		Aggregator: agg,
	}, logger)
}

func TestTeamCreateRequiresAdminRole(t *testing.T) {
	users := newFakeUserRepo(domain.User{ID: "u-lead", WorkspaceID: "ws-main"})
	svc := newTestTeamService(newFakeWorkspaceRepo(), newFakeTeamRepo(), users, newFakeBranchRepo(), newFakeRegionRepo())

	member := &domain.User{ID: "u-1", Role: domain.RoleMember, WorkspaceID: "ws-main"}
	if _, err := svc.Create(context.Background(), member, TeamCreateInput{Name: "Core", LeadID: "u-lead"}); err == nil {
		t.Fatal("expected member team creation to be rejected")
	}
}

func TestTeamCreateRejectsForeignLead(t *testing.T) {
	users := newFakeUserRepo(domain.User{ID: "u-lead", WorkspaceID: "ws-other"})
	svc := newTestTeamService(newFakeWorkspaceRepo(), newFakeTeamRepo(), users, newFakeBranchRepo(), newFakeRegionRepo())

	admin := &domain.User{ID: "u-1", Role: domain.RoleAdmin, WorkspaceID: "ws-main"}
	if _, err := svc.Create(context.Background(), admin, TeamCreateInput{Name: "Core", LeadID: "u-lead"}); err == nil {
		t.Fatal("expected lead from another workspace to be rejected")
	}
}

func TestTeamOverviewGroupsAndRestrictsSubWorkspaces(t *testing.T) {
	mainID := "ws-main"
	east := "br-east"
	west := "br-west"

	workspaces := newFakeWorkspaceRepo(
		domain.Workspace{ID: mainID, Name: "Main", Type: domain.WorkspaceTypeMain},
		domain.Workspace{ID: "ws-sub", Name: "Sub", Type: domain.WorkspaceTypeSub, ParentWorkspaceID: &mainID, BranchID: &east},
	)
	workspaces.accessible = &domain.AccessibleWorkspaces{
		Owned: []domain.Workspace{{ID: mainID, Type: domain.WorkspaceTypeMain}},
		Sub: map[string][]domain.Workspace{
			mainID: {{ID: "ws-sub", Type: domain.WorkspaceTypeSub, ParentWorkspaceID: &mainID}},
		},
		RoleByWorkspace: map[string]domain.Role{mainID: domain.RoleOwner},
	}

	teams := newFakeTeamRepo()
	ctx := context.Background()
	teams.Create(ctx, &domain.Team{ID: "t-1", WorkspaceID: mainID, Name: "Core", BranchID: &east})
	teams.Create(ctx, &domain.Team{ID: "t-2", WorkspaceID: mainID, Name: "Floaters"})
	teams.Create(ctx, &domain.Team{ID: "t-3", WorkspaceID: "ws-sub", Name: "Sub East", BranchID: &east})
	teams.Create(ctx, &domain.Team{ID: "t-4", WorkspaceID: "ws-sub", Name: "Sub West", BranchID: &west})

	users := newFakeUserRepo(
		domain.User{ID: "u-1", WorkspaceID: mainID},
		domain.User{ID: "u-2", WorkspaceID: mainID},
		domain.User{ID: "u-3", WorkspaceID: "ws-sub"},
	)
	branches := newFakeBranchRepo(
		domain.Branch{ID: east, WorkspaceID: mainID, Name: "East"},
		domain.Branch{ID: west, WorkspaceID: mainID, Name: "West"},
	)

	svc := newTestTeamService(workspaces, teams, users, branches, newFakeRegionRepo())

	caller := &domain.User{ID: "u-1", Role: domain.RoleOwner, WorkspaceID: mainID}
	overview, err := svc.Overview(ctx, caller)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// t-4 is bound to a branch outside its sub workspace's binding.
	if overview.TotalTeams != 3 {
		t.Errorf("total teams = %d, want 3", overview.TotalTeams)
	}
	if overview.TotalMembers != 3 {
		t.Errorf("total members = %d, want 3", overview.TotalMembers)
	}
	if overview.WorkspaceCount != 2 {
		t.Errorf("workspace count = %d, want 2", overview.WorkspaceCount)
	}

	if len(overview.ByBranch) != 2 {
		t.Fatalf("branch groups = %d, want 2", len(overview.ByBranch))
	}
	eastGroup := overview.ByBranch[0]
	if eastGroup.Key != east || eastGroup.Name != "East" || eastGroup.TeamCount != 2 {
		t.Errorf("east group = %+v, want key %q name East count 2", eastGroup, east)
	}
	unassigned := overview.ByBranch[1]
	if unassigned.Key != "unassigned" || unassigned.Name != "Unassigned" || unassigned.TeamCount != 1 {
		t.Errorf("unassigned group = %+v, want 1 team", unassigned)
	}

	if len(overview.ByRegion) != 1 || overview.ByRegion[0].Key != "unassigned" {
		t.Errorf("region groups = %+v, want single unassigned bucket", overview.ByRegion)
	}
}
