package usecase

import (
	"context"
	"strings"

	"blog-platform/internal/auth"
	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
)

// GoogleSignIn exchanges a Google authorization code for a profile and
// signs the user in, creating the account on first use. Google-verified
// addresses skip the email verification step.
func (uc *implUseCase) GoogleSignIn(ctx context.Context, input auth.GoogleSignInInput) (auth.GoogleSignInOutput, error) {
	profile, err := uc.google.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleSignIn Exchange: %v", err)
		return auth.GoogleSignInOutput{}, auth.ErrInvalidCredentials
	}
	if profile.Email == "" || !profile.EmailVerified {
		return auth.GoogleSignInOutput{}, auth.ErrInvalidCredentials
	}

	email := strings.TrimSpace(strings.ToLower(profile.Email))

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleSignIn GetOneUser: %v", err)
		return auth.GoogleSignInOutput{}, err
	}

	isNew := user.ID == ""
	if isNew {
		user, err = uc.repo.CreateUser(ctx, repo.CreateUserOptions{
			Name:          profile.Name,
			Email:         email,
			Role:          string(model.RoleUser),
			Status:        string(model.UserStatusActive),
			EmailVerified: true,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.GoogleSignIn CreateUser: %v", err)
			return auth.GoogleSignInOutput{}, err
		}
	}

	if user.Status == model.UserStatusBlocked {
		return auth.GoogleSignInOutput{}, auth.ErrAccountBlocked
	}

	token, err := uc.jwtManager.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleSignIn Generate: %v", err)
		return auth.GoogleSignInOutput{}, err
	}

	return auth.GoogleSignInOutput{User: user, Token: token, IsNewUser: isNew}, nil
}
