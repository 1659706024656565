package auth

import (
	"context"

	"blog-platform/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	VerifyEmail(ctx context.Context, token string) (VerifyEmailOutput, error)
	GoogleSignIn(ctx context.Context, input GoogleSignInInput) (GoogleSignInOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
