package domain

import "time"

// Role enumerates workspace-level roles for users.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// UserStatus represents lifecycle states for a user account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the domain model for workspace members.
type User struct {
	ID           string
	WorkspaceID  string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	DepartmentID *string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
