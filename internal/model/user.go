package model

import "time"

// Role is the access role assigned to a user. Comparison is exact and
// case-sensitive; there is no role hierarchy.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

// User is a registered account.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string // empty for OAuth-only accounts
	Phone         string
	Role          Role
	Status        UserStatus
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
