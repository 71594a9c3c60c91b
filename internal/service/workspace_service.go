package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// WorkspaceService manages workspace lookup and sub-workspace creation.
type WorkspaceService struct {
	workspaces repository.WorkspaceRepository
}

// SubWorkspaceInput describes sub-workspace creation payload. A sub is
// always bound to one branch/region pair.
type SubWorkspaceInput struct {
	Name     string
	BranchID string
	RegionID string
}

// NewWorkspaceService constructs the service.
func NewWorkspaceService(workspaces repository.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaces: workspaces}
}

// CreateSub creates a sub-workspace under the owner's current workspace.
func (s *WorkspaceService) CreateSub(ctx context.Context, owner *domain.User, input SubWorkspaceInput) (*domain.Workspace, error) {
	if owner.Role != domain.RoleOwner {
		return nil, errors.New("owner role required")
	}
	if input.BranchID == "" || input.RegionID == "" {
		return nil, errors.New("sub workspace requires branch and region binding")
	}

	parent, err := s.workspaces.GetByID(ctx, owner.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if parent.Type != domain.WorkspaceTypeMain {
		return nil, errors.New("sub workspaces can only be created under a main workspace")
	}

	ws := &domain.Workspace{
		Name:              strings.TrimSpace(input.Name),
		Type:              domain.WorkspaceTypeSub,
		ParentWorkspaceID: &parent.ID,
		OwnerID:           owner.ID,
		BranchID:          &input.BranchID,
		RegionID:          &input.RegionID,
	}
	if err := s.workspaces.Create(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// ListAccessible returns the directory view for the caller.
func (s *WorkspaceService) ListAccessible(ctx context.Context, caller *domain.User) (*domain.AccessibleWorkspaces, error) {
	return s.workspaces.GetAccessible(ctx, caller.ID)
}
