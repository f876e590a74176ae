package user

import "time"

type Role string

const (
	RoleOwner   Role = "owner"   // Company owner - full access
	RoleManager Role = "manager" // Can edit schedules
	RoleViewer  Role = "viewer"  // Read-only access
)

type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if user can edit schedules.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleOwner
}
