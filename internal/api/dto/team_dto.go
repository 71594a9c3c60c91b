package dto

import (
	"time"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// CreateTeamRequest payload.
type CreateTeamRequest struct {
	Name     string  `json:"name"`
	LeadID   string  `json:"lead_id"`
	BranchID *string `json:"branch_id,omitempty"`
	RegionID *string `json:"region_id,omitempty"`
}

// AddTeamMemberRequest payload.
type AddTeamMemberRequest struct {
	UserID string `json:"user_id"`
}

// TeamResponse projects a team for API output.
type TeamResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	LeadID      string    `json:"lead_id"`
	BranchID    *string   `json:"branch_id,omitempty"`
	RegionID    *string   `json:"region_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamFromDomain maps a domain team to its response shape.
func TeamFromDomain(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		WorkspaceID: team.WorkspaceID,
		Name:        team.Name,
		LeadID:      team.LeadID,
		BranchID:    team.BranchID,
		RegionID:    team.RegionID,
		CreatedAt:   team.CreatedAt,
	}
}
