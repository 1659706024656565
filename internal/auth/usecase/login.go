package usecase

import (
	"context"
	"strings"

	"blog-platform/internal/auth"
	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
)

// Login authenticates an email/password pair and issues a session token.
// Accounts created through OAuth alone carry no password and cannot use
// this path.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == "" || user.PasswordHash == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if !checkPassword(input.Password, user.PasswordHash) {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return auth.LoginOutput{}, auth.ErrEmailNotVerified
	}
	if user.Status == model.UserStatusBlocked {
		return auth.LoginOutput{}, auth.ErrAccountBlocked
	}

	token, err := uc.jwtManager.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{User: user, Token: token}, nil
}
