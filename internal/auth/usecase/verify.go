package usecase

import (
	"context"

	"blog-platform/internal/auth"
	repo "blog-platform/internal/auth/repository"
)

// VerifyEmail consumes a verification token, marks the account verified
// and signs the user in.
func (uc *implUseCase) VerifyEmail(ctx context.Context, token string) (auth.VerifyEmailOutput, error) {
	if token == "" {
		return auth.VerifyEmailOutput{}, auth.ErrInvalidVerifyToken
	}

	stored, err := uc.repo.GetVerificationToken(ctx, hashToken(token))
	if err != nil {
		uc.l.Errorf(ctx, "uc.VerifyEmail GetVerificationToken: %v", err)
		return auth.VerifyEmailOutput{}, err
	}
	if stored.ID == "" || timeNow().After(stored.ExpiresAt) {
		return auth.VerifyEmailOutput{}, auth.ErrInvalidVerifyToken
	}

	user, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:               stored.UserID,
		SetEmailVerified: true,
		EmailVerified:    true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.VerifyEmail UpdateUser: %v", err)
		return auth.VerifyEmailOutput{}, err
	}
	if user.ID == "" {
		return auth.VerifyEmailOutput{}, auth.ErrUserNotFound
	}

	// Tokens are single-use.
	if err := uc.repo.DeleteVerificationTokens(ctx, stored.UserID); err != nil {
		uc.l.Warnf(ctx, "uc.VerifyEmail DeleteVerificationTokens: %v", err)
	}

	sessionToken, err := uc.jwtManager.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		uc.l.Errorf(ctx, "uc.VerifyEmail Generate: %v", err)
		return auth.VerifyEmailOutput{}, err
	}

	return auth.VerifyEmailOutput{User: user, Token: sessionToken}, nil
}
