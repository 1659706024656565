package usecase

import (
	"context"

	"blog-platform/internal/post"
	repo "blog-platform/internal/post/repository"
)

// Detail returns a single Post by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (post.DetailPostOutput, error) {
	found, err := uc.repo.GetOnePost(ctx, repo.GetOnePostOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOnePost: %v", err)
		return post.DetailPostOutput{}, err
	}
	if found.ID == "" {
		return post.DetailPostOutput{}, post.ErrPostNotFound
	}

	return post.DetailPostOutput{Post: found}, nil
}
