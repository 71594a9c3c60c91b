package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// TeamRepository manages persistence for teams and memberships.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Team, error)
	AddMember(ctx context.Context, member *domain.TeamMember) error
	ListMembers(ctx context.Context, teamID string) ([]domain.TeamMember, error)
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository constructs repository.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

const teamColumns = `id, workspace_id, name, lead_id, branch_id, region_id, created_at, updated_at`

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `
        INSERT INTO teams (workspace_id, name, lead_id, branch_id, region_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		team.WorkspaceID,
		team.Name,
		team.LeadID,
		team.BranchID,
		team.RegionID,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id=$1`
	var team domain.Team
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.WorkspaceID,
		&team.Name,
		&team.LeadID,
		&team.BranchID,
		&team.RegionID,
		&team.CreatedAt,
		&team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE workspace_id=$1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.WorkspaceID,
			&team.Name,
			&team.LeadID,
			&team.BranchID,
			&team.RegionID,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}

func (r *teamRepository) AddMember(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (team_id, user_id, role)
        VALUES ($1,$2,$3)
        ON CONFLICT (team_id, user_id) DO UPDATE SET role=EXCLUDED.role
        RETURNING joined_at`
	return r.pool.QueryRow(ctx, query,
		member.TeamID,
		member.UserID,
		member.Role,
	).Scan(&member.JoinedAt)
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID string) ([]domain.TeamMember, error) {
	const query = `
        SELECT team_id, user_id, role, joined_at
        FROM team_members WHERE team_id=$1 ORDER BY joined_at`
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(&member.TeamID, &member.UserID, &member.Role, &member.JoinedAt); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}
