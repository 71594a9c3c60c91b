package domain

import "time"

// Team groups users inside a workspace and may be bound to a branch/region
// for the reconciliation views.
type Team struct {
	ID          string
	WorkspaceID string
	Name        string
	LeadID      string
	BranchID    *string
	RegionID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMemberRole enumerates membership roles inside a team.
type TeamMemberRole string

const (
	TeamMemberRoleLead   TeamMemberRole = "LEAD"
	TeamMemberRoleMember TeamMemberRole = "MEMBER"
)

// TeamMember is the membership relation between users and teams.
type TeamMember struct {
	TeamID   string
	UserID   string
	Role     TeamMemberRole
	JoinedAt time.Time
}
