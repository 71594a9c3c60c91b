package domain

import "time"

// WorkspaceType distinguishes top-level tenants from bound sub-workspaces.
type WorkspaceType string

const (
	WorkspaceTypeMain WorkspaceType = "MAIN"
	WorkspaceTypeSub  WorkspaceType = "SUB"
)

// Workspace is the tenant container for reports, teams and users.
// A SUB workspace always carries ParentWorkspaceID and is bound to exactly
// one branch/region pair.
type Workspace struct {
	ID                string
	Name              string
	Type              WorkspaceType
	ParentWorkspaceID *string
	OwnerID           string
	BranchID          *string
	RegionID          *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AccessibleWorkspaces describes every workspace a user may reach, as
// returned by the directory lookup: owned mains, their sub-workspaces keyed
// by parent id, and the caller's role per workspace.
type AccessibleWorkspaces struct {
	Owned           []Workspace
	Sub             map[string][]Workspace
	RoleByWorkspace map[string]Role
}
