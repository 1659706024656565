package repository

import (
	"context"

	"blog-platform/internal/model"
)

// Repository is the composed interface for the post domain data store.
type Repository interface {
	PostRepository
}

// PostRepository defines all data access methods for the Post entity.
type PostRepository interface {
	CreatePost(ctx context.Context, opt CreatePostOptions) (model.Post, error)
	GetOnePost(ctx context.Context, opt GetOnePostOptions) (model.Post, error)
	ListPosts(ctx context.Context, opt ListPostsOptions) ([]model.Post, int, error)
}
