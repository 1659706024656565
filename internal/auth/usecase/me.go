package usecase

import (
	"context"

	"blog-platform/internal/auth"
	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
)

// Me returns the profile of the authenticated caller.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == "" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}

	return auth.MeOutput{User: user}, nil
}
