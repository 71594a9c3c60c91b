package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// WorkspaceRepository encapsulates workspace persistence and the
// accessible-workspace directory lookup.
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *domain.Workspace) error
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Workspace, error)
	ListSubWorkspaces(ctx context.Context, parentID string) ([]domain.Workspace, error)
	GetAccessible(ctx context.Context, userID string) (*domain.AccessibleWorkspaces, error)
}

type workspaceRepository struct {
	pool *pgxpool.Pool
}

// NewWorkspaceRepository returns a Postgres-backed implementation.
func NewWorkspaceRepository(pool *pgxpool.Pool) WorkspaceRepository {
	return &workspaceRepository{pool: pool}
}

const workspaceColumns = `id, name, type, parent_workspace_id, owner_id, branch_id, region_id, created_at, updated_at`

func (r *workspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	const query = `
        INSERT INTO workspaces (name, type, parent_workspace_id, owner_id, branch_id, region_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		workspace.Name,
		workspace.Type,
		workspace.ParentWorkspaceID,
		workspace.OwnerID,
		workspace.BranchID,
		workspace.RegionID,
	).Scan(&workspace.ID, &workspace.CreatedAt, &workspace.UpdatedAt)
}

func (r *workspaceRepository) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE id=$1`
	var ws domain.Workspace
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ws.ID,
		&ws.Name,
		&ws.Type,
		&ws.ParentWorkspaceID,
		&ws.OwnerID,
		&ws.BranchID,
		&ws.RegionID,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *workspaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE owner_id=$1 AND type='MAIN' ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkspaces(rows)
}

func (r *workspaceRepository) ListSubWorkspaces(ctx context.Context, parentID string) ([]domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE parent_workspace_id=$1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkspaces(rows)
}

// GetAccessible assembles the directory view for scope resolution: owned
// main workspaces, their subs, and the caller's role in every workspace
// where they hold an account.
func (r *workspaceRepository) GetAccessible(ctx context.Context, userID string) (*domain.AccessibleWorkspaces, error) {
	owned, err := r.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	acc := &domain.AccessibleWorkspaces{
		Owned:           owned,
		Sub:             make(map[string][]domain.Workspace),
		RoleByWorkspace: make(map[string]domain.Role),
	}
	for _, ws := range owned {
		acc.RoleByWorkspace[ws.ID] = domain.RoleOwner
		subs, err := r.ListSubWorkspaces(ctx, ws.ID)
		if err != nil {
			return nil, err
		}
		if len(subs) > 0 {
			acc.Sub[ws.ID] = subs
			for _, sub := range subs {
				acc.RoleByWorkspace[sub.ID] = domain.RoleOwner
			}
		}
	}

	const roleQuery = `
        SELECT workspace_id, role FROM users WHERE id=$1
        UNION
        SELECT u.workspace_id, u.role FROM users u WHERE u.email = (SELECT email FROM users WHERE id=$1)`
	rows, err := r.pool.Query(ctx, roleQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var workspaceID string
		var role domain.Role
		if err := rows.Scan(&workspaceID, &role); err != nil {
			return nil, err
		}
		if _, owner := acc.RoleByWorkspace[workspaceID]; !owner {
			acc.RoleByWorkspace[workspaceID] = role
		}
	}
	return acc, rows.Err()
}

func scanWorkspaces(rows pgx.Rows) ([]domain.Workspace, error) {
	var result []domain.Workspace
	for rows.Next() {
		var ws domain.Workspace
		if err := rows.Scan(
			&ws.ID,
			&ws.Name,
			&ws.Type,
			&ws.ParentWorkspaceID,
			&ws.OwnerID,
			&ws.BranchID,
			&ws.RegionID,
			&ws.CreatedAt,
			&ws.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ws)
	}
	return result, rows.Err()
}
