package usecase

import (
	"context"

	"blog-platform/internal/post"
	repo "blog-platform/internal/post/repository"
	"blog-platform/pkg/paginator"
)

// List returns a page of Posts matching the filter descriptor, with the
// total count and derived page count for the same filter.
func (uc *implUseCase) List(ctx context.Context, input post.ListPostsInput) (post.ListPostsOutput, error) {
	posts, total, err := uc.repo.ListPosts(ctx, repo.ListPostsOptions{
		Search:     input.Search,
		Tags:       input.Tags,
		IsFeatured: input.IsFeatured,
		Status:     input.Status,
		AuthorID:   input.AuthorID,
		Limit:      input.Pagination.Limit,
		Skip:       input.Pagination.Skip,
		SortBy:     input.Pagination.SortBy,
		SortOrder:  input.Pagination.SortOrder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPosts: %v", err)
		return post.ListPostsOutput{}, err
	}

	return post.ListPostsOutput{
		Posts:      posts,
		Total:      total,
		TotalPages: paginator.TotalPages(total, input.Pagination.Limit),
		Pagination: input.Pagination,
	}, nil
}
