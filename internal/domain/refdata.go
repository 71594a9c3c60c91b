package domain

import "time"

// Department is a grouping dimension for users and reports.
type Department struct {
	ID          string
	WorkspaceID string
	Name        string
	IsActive    bool
	CreatedAt   time.Time
}

// Template describes a report template scoped to a workspace.
type Template struct {
	ID          string
	WorkspaceID string
	Name        string
	IsActive    bool
	CreatedAt   time.Time
}

// Branch is an organizational location dimension.
type Branch struct {
	ID          string
	WorkspaceID string
	RegionID    string
	Name        string
	CreatedAt   time.Time
}

// Region is the top-level location dimension for branches and teams.
type Region struct {
	ID          string
	WorkspaceID string
	Name        string
	CreatedAt   time.Time
}
