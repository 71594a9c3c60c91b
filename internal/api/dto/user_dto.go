package dto

import (
	"time"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// RegisterRequest payload for new workspace members.
type RegisterRequest struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse projects a user for API output.
type UserResponse struct {
	ID           string      `json:"id"`
	WorkspaceID  string      `json:"workspace_id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	DepartmentID *string     `json:"department_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// UserFromDomain maps a domain user to its response shape.
func UserFromDomain(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		WorkspaceID:  user.WorkspaceID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
		CreatedAt:    user.CreatedAt,
	}
}
