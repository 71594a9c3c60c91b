package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// DepartmentRepository lists department dimensions per workspace.
type DepartmentRepository interface {
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Department, error)
}

// TemplateRepository lists report templates per workspace.
type TemplateRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Template, error)
}

// BranchRepository lists branch dimensions per workspace.
type BranchRepository interface {
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Branch, error)
}

// RegionRepository lists region dimensions per workspace.
type RegionRepository interface {
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Region, error)
}

type departmentRepository struct{ pool *pgxpool.Pool }
type templateRepository struct{ pool *pgxpool.Pool }
type branchRepository struct{ pool *pgxpool.Pool }
type regionRepository struct{ pool *pgxpool.Pool }

// NewDepartmentRepository constructs repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

// NewTemplateRepository constructs repository.
func NewTemplateRepository(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepository{pool: pool}
}

// NewBranchRepository constructs repository.
func NewBranchRepository(pool *pgxpool.Pool) BranchRepository {
	return &branchRepository{pool: pool}
}

// NewRegionRepository constructs repository.
func NewRegionRepository(pool *pgxpool.Pool) RegionRepository {
	return &regionRepository{pool: pool}
}

func (r *departmentRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Department, error) {
	const query = `
        SELECT id, workspace_id, name, is_active, created_at
        FROM departments WHERE workspace_id=$1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.WorkspaceID, &dept.Name, &dept.IsActive, &dept.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	const query = `
        SELECT id, workspace_id, name, is_active, created_at
        FROM templates WHERE id=$1`
	var tpl domain.Template
	if err := r.pool.QueryRow(ctx, query, id).Scan(&tpl.ID, &tpl.WorkspaceID, &tpl.Name, &tpl.IsActive, &tpl.CreatedAt); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Template, error) {
	const query = `
        SELECT id, workspace_id, name, is_active, created_at
        FROM templates WHERE workspace_id=$1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Template
	for rows.Next() {
		var tpl domain.Template
		if err := rows.Scan(&tpl.ID, &tpl.WorkspaceID, &tpl.Name, &tpl.IsActive, &tpl.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, tpl)
	}
	return result, rows.Err()
}

func (r *branchRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Branch, error) {
	const query = `
        SELECT id, workspace_id, region_id, name, created_at
        FROM branches WHERE workspace_id=$1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Branch
	for rows.Next() {
		var branch domain.Branch
		if err := rows.Scan(&branch.ID, &branch.WorkspaceID, &branch.RegionID, &branch.Name, &branch.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, branch)
	}
	return result, rows.Err()
}

func (r *regionRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Region, error) {
	const query = `
        SELECT id, workspace_id, name, created_at
        FROM regions WHERE workspace_id=$1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Region
	for rows.Next() {
		var region domain.Region
		if err := rows.Scan(&region.ID, &region.WorkspaceID, &region.Name, &region.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, region)
	}
	return result, rows.Err()
}
