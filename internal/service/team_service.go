package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/analytics"
	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// TeamService coordinates team management and the cross-workspace
// team/branch/region reconciliation view.
type TeamService struct {
	teams    repository.TeamRepository
	users    repository.UserRepository
	branches repository.BranchRepository
	regions  repository.RegionRepository
	scope    *ScopeResolver
	agg      *Aggregator
	logger   *zap.Logger
}

// TeamDependencies bundles collaborators for the team service.
type TeamDependencies struct {
	TeamRepo   repository.TeamRepository
	UserRepo   repository.UserRepository
	BranchRepo repository.BranchRepository
	RegionRepo repository.RegionRepository
	Scope      *ScopeResolver
	Aggregator *Aggregator
}

// TeamCreateInput describes team creation payload.
type TeamCreateInput struct {
	Name     string
	LeadID   string
	BranchID *string
	RegionID *string
}

// TeamGroup is one branch or region bucket in the reconciliation view.
type TeamGroup struct {
	Key       string                          `json:"key"`
	Name      string                          `json:"name"`
	TeamCount int                             `json:"team_count"`
	Teams     []analytics.Tagged[domain.Team] `json:"teams"`
}

// TeamOverview is the merged cross-workspace reconciliation result.
type TeamOverview struct {
	TotalTeams     int         `json:"total_teams"`
	TotalMembers   int         `json:"total_members"`
	WorkspaceCount int         `json:"workspace_count"`
	ByBranch       []TeamGroup `json:"by_branch"`
	ByRegion       []TeamGroup `json:"by_region"`
}

// NewTeamService constructs the service.
func NewTeamService(deps TeamDependencies, logger *zap.Logger) *TeamService {
	return &TeamService{
		teams:    deps.TeamRepo,
		users:    deps.UserRepo,
		branches: deps.BranchRepo,
		regions:  deps.RegionRepo,
		scope:    deps.Scope,
		agg:      deps.Aggregator,
		logger:   logger,
	}
}

// Create creates a team in the caller's workspace.
func (s *TeamService) Create(ctx context.Context, creator *domain.User, input TeamCreateInput) (*domain.Team, error) {
	if creator.Role == domain.RoleMember {
		return nil, errors.New("admin role required")
	}
	lead, err := s.users.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}
	if lead.WorkspaceID != creator.WorkspaceID {
		return nil, errors.New("lead not part of workspace")
	}

	team := &domain.Team{
		WorkspaceID: creator.WorkspaceID,
		Name:        strings.TrimSpace(input.Name),
		LeadID:      input.LeadID,
		BranchID:    input.BranchID,
		RegionID:    input.RegionID,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	if err := s.teams.AddMember(ctx, &domain.TeamMember{
		TeamID: team.ID,
		UserID: input.LeadID,
		Role:   domain.TeamMemberRoleLead,
	}); err != nil {
		return nil, err
	}
	return team, nil
}

// AddMember adds a workspace user to a team.
func (s *TeamService) AddMember(ctx context.Context, actor *domain.User, teamID, userID string) (*domain.TeamMember, error) {
	if actor.Role == domain.RoleMember {
		return nil, errors.New("admin role required")
	}
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.WorkspaceID != actor.WorkspaceID {
		return nil, errors.New("access denied")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.WorkspaceID != team.WorkspaceID {
		return nil, errors.New("user not part of workspace")
	}

	member := &domain.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   domain.TeamMemberRoleMember,
	}
	if err := s.teams.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// ListForWorkspace returns teams in the caller's workspace.
func (s *TeamService) ListForWorkspace(ctx context.Context, caller *domain.User) ([]domain.Team, error) {
	return s.teams.ListByWorkspace(ctx, caller.WorkspaceID)
}

// Overview reconciles teams across every workspace in the caller's scope,
// grouped by branch and by region. Sub workspaces contribute only the teams
// bound to their own branch/region.
func (s *TeamService) Overview(ctx context.Context, caller *domain.User) (*TeamOverview, error) {
	workspaceIDs, err := s.scope.Resolve(ctx, caller.ID, caller.Role, caller.WorkspaceID)
	if err != nil {
		return nil, err
	}

	snapshot := s.agg.Collect(ctx, workspaceIDs, CollectOptions{
		Teams: true,
		Users: true,
	})

	teams := restrictSubWorkspaceTeams(snapshot)

	branchNames, regionNames := s.dimensionNames(ctx, snapshot.Workspaces)

	overview := &TeamOverview{
		TotalTeams:     len(teams),
		TotalMembers:   len(snapshot.Users),
		WorkspaceCount: len(snapshot.Workspaces),
		ByBranch:       groupTeams(teams, branchNames, func(t domain.Team) *string { return t.BranchID }),
		ByRegion:       groupTeams(teams, regionNames, func(t domain.Team) *string { return t.RegionID }),
	}
	return overview, nil
}

// restrictSubWorkspaceTeams drops teams that leak outside a sub workspace's
// bound branch/region.
func restrictSubWorkspaceTeams(snapshot *Snapshot) []analytics.Tagged[domain.Team] {
	byID := make(map[string]domain.Workspace, len(snapshot.Workspaces))
	for _, ws := range snapshot.Workspaces {
		byID[ws.ID] = ws
	}

	var result []analytics.Tagged[domain.Team]
	for _, team := range snapshot.Teams {
		ws, ok := byID[team.WorkspaceID]
		if ok && ws.Type == domain.WorkspaceTypeSub {
			if ws.BranchID != nil && team.Entity.BranchID != nil && *team.Entity.BranchID != *ws.BranchID {
				continue
			}
			if ws.RegionID != nil && team.Entity.RegionID != nil && *team.Entity.RegionID != *ws.RegionID {
				continue
			}
		}
		result = append(result, team)
	}
	return result
}

func groupTeams(teams []analytics.Tagged[domain.Team], names map[string]string, key func(domain.Team) *string) []TeamGroup {
	order := []string{}
	buckets := make(map[string][]analytics.Tagged[domain.Team])
	for _, team := range teams {
		id := "unassigned"
		if k := key(team.Entity); k != nil && *k != "" {
			id = *k
		}
		if _, seen := buckets[id]; !seen {
			order = append(order, id)
		}
		buckets[id] = append(buckets[id], team)
	}

	groups := make([]TeamGroup, 0, len(order))
	for _, id := range order {
		name := names[id]
		if name == "" {
			name = "Unassigned"
		}
		groups = append(groups, TeamGroup{
			Key:       id,
			Name:      name,
			TeamCount: len(buckets[id]),
			Teams:     buckets[id],
		})
	}
	return groups
}

// dimensionNames loads branch/region display names for each workspace in the
// snapshot. Failures degrade to id-keyed groups rather than aborting.
func (s *TeamService) dimensionNames(ctx context.Context, workspaces []domain.Workspace) (map[string]string, map[string]string) {
	branchNames := make(map[string]string)
	regionNames := make(map[string]string)
	for _, ws := range workspaces {
		branches, err := s.branches.ListByWorkspace(ctx, ws.ID)
		if err != nil {
			s.logger.Warn("branch lookup failed", zap.String("workspace_id", ws.ID), zap.Error(err))
		} else {
			for _, branch := range branches {
				branchNames[branch.ID] = branch.Name
			}
		}
		regions, err := s.regions.ListByWorkspace(ctx, ws.ID)
		if err != nil {
			s.logger.Warn("region lookup failed", zap.String("workspace_id", ws.ID), zap.Error(err))
			continue
		}
		for _, region := range regions {
			regionNames[region.ID] = region.Name
		}
	}
	return branchNames, regionNames
}
