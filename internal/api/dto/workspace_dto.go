package dto

import (
	"time"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// CreateSubWorkspaceRequest payload.
type CreateSubWorkspaceRequest struct {
	Name     string `json:"name"`
	BranchID string `json:"branch_id"`
	RegionID string `json:"region_id"`
}

// WorkspaceResponse projects a workspace for API output.
type WorkspaceResponse struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Type              domain.WorkspaceType `json:"type"`
	ParentWorkspaceID *string              `json:"parent_workspace_id,omitempty"`
	OwnerID           string               `json:"owner_id"`
	BranchID          *string              `json:"branch_id,omitempty"`
	RegionID          *string              `json:"region_id,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// AccessibleWorkspacesResponse lists reachable workspaces with the caller's
// role at each.
type AccessibleWorkspacesResponse struct {
	Owned []WorkspaceResponse            `json:"owned"`
	Sub   map[string][]WorkspaceResponse `json:"sub"`
	Roles map[string]domain.Role         `json:"roles"`
}

// WorkspaceFromDomain maps a workspace to its response shape.
func WorkspaceFromDomain(ws *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:                ws.ID,
		Name:              ws.Name,
		Type:              ws.Type,
		ParentWorkspaceID: ws.ParentWorkspaceID,
		OwnerID:           ws.OwnerID,
		BranchID:          ws.BranchID,
		RegionID:          ws.RegionID,
		CreatedAt:         ws.CreatedAt,
	}
}

// AccessibleFromDomain maps the directory lookup result.
func AccessibleFromDomain(acc *domain.AccessibleWorkspaces) AccessibleWorkspacesResponse {
	resp := AccessibleWorkspacesResponse{
		Owned: make([]WorkspaceResponse, 0, len(acc.Owned)),
		Sub:   make(map[string][]WorkspaceResponse, len(acc.Sub)),
		Roles: acc.RoleByWorkspace,
	}
	for i := range acc.Owned {
		resp.Owned = append(resp.Owned, WorkspaceFromDomain(&acc.Owned[i]))
	}
	for parentID, subs := range acc.Sub {
		items := make([]WorkspaceResponse, 0, len(subs))
		for i := range subs {
			items = append(items, WorkspaceFromDomain(&subs[i]))
		}
		resp.Sub[parentID] = items
	}
	return resp
}
