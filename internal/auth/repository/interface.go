package repository

import (
	"context"

	"blog-platform/internal/model"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
	TokenRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
}

// TokenRepository defines data access for email verification tokens.
// Tokens are stored hashed; lookup is by hash only.
type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, opt CreateVerificationTokenOptions) error
	GetVerificationToken(ctx context.Context, tokenHash string) (VerificationToken, error)
	DeleteVerificationTokens(ctx context.Context, userID string) error
}
