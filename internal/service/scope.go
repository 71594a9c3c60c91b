package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// ScopeResolver turns a user's role into the ordered list of workspace ids
// their aggregations may read. It takes identity and the current workspace
// explicitly so the pipeline stays a pure function of its inputs.
type ScopeResolver struct {
	workspaces repository.WorkspaceRepository
	logger     *zap.Logger
}

// NewScopeResolver constructs the resolver.
func NewScopeResolver(workspaces repository.WorkspaceRepository, logger *zap.Logger) *ScopeResolver {
	return &ScopeResolver{workspaces: workspaces, logger: logger}
}

// Resolve returns the workspace ids in scope for the user. Owners get every
// workspace they own or administer, admins only workspaces where their role
// is admin, members exactly the current workspace. If the directory lookup
// fails or comes back empty the scope falls back to the current workspace
// rather than erroring; only a missing current workspace is fatal.
func (r *ScopeResolver) Resolve(ctx context.Context, userID string, role domain.Role, currentWorkspaceID string) ([]string, error) {
	if currentWorkspaceID == "" {
		return nil, errors.New("current workspace required")
	}
	if role == domain.RoleMember {
		return []string{currentWorkspaceID}, nil
	}

	acc, err := r.workspaces.GetAccessible(ctx, userID)
	if err != nil {
		r.logger.Warn("accessible workspace lookup failed; falling back to current workspace",
			zap.String("user_id", userID), zap.Error(err))
		return []string{currentWorkspaceID}, nil
	}

	var ids []string
	switch role {
	case domain.RoleOwner:
		for _, ws := range acc.Owned {
			ids = appendUnique(ids, ws.ID)
			for _, sub := range acc.Sub[ws.ID] {
				ids = appendUnique(ids, sub.ID)
			}
		}
		for _, workspaceID := range adminWorkspaceIDs(acc.RoleByWorkspace) {
			ids = appendUnique(ids, workspaceID)
		}
	case domain.RoleAdmin:
		for _, workspaceID := range adminWorkspaceIDs(acc.RoleByWorkspace) {
			ids = appendUnique(ids, workspaceID)
		}
	default:
		return []string{currentWorkspaceID}, nil
	}

	if len(ids) == 0 {
		return []string{currentWorkspaceID}, nil
	}
	return ids, nil
}

// adminWorkspaceIDs extracts admin-role workspace ids in a stable order.
func adminWorkspaceIDs(roles map[string]domain.Role) []string {
	var ids []string
	for workspaceID, role := range roles {
		if role == domain.RoleAdmin {
			ids = append(ids, workspaceID)
		}
	}
	sort.Strings(ids)
	return ids
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
