package repository

import "time"

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name          string
	Email         string
	PasswordHash  string // empty for OAuth-only accounts
	Phone         string
	Role          string
	Status        string
	EmailVerified bool
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions holds parameters for updating an existing User.
// Zero-valued fields are left untouched; EmailVerified is applied only
// when SetEmailVerified is true.
type UpdateUserOptions struct {
	ID               string
	Name             string
	Phone            string
	Status           string
	SetEmailVerified bool
	EmailVerified    bool
}

// VerificationToken is a stored, hashed email verification token.
type VerificationToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CreateVerificationTokenOptions holds parameters for storing a new
// verification token.
type CreateVerificationTokenOptions struct {
	UserID    string
	TokenHash string
	ExpiresAt time.Time
}
