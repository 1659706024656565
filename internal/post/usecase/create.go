package usecase

import (
	"context"

	"blog-platform/internal/model"
	"blog-platform/internal/post"
	repo "blog-platform/internal/post/repository"
)

// Create persists a new Post attributed to the authenticated caller.
// The route gate already enforced authentication; the identity check here
// is a last line of defense.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input post.CreatePostInput) (post.CreatePostOutput, error) {
	if sc.UserID == "" {
		return post.CreatePostOutput{}, post.ErrMissingAuthor
	}

	status := input.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	created, err := uc.repo.CreatePost(ctx, repo.CreatePostOptions{
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   sc.UserID,
		Tags:       input.Tags,
		IsFeatured: input.IsFeatured,
		Status:     string(status),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreatePost: %v", err)
		return post.CreatePostOutput{}, err
	}

	return post.CreatePostOutput{Post: created}, nil
}
