package post

import (
	"context"

	"blog-platform/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreatePostInput) (CreatePostOutput, error)
	List(ctx context.Context, input ListPostsInput) (ListPostsOutput, error)
	Detail(ctx context.Context, id string) (DetailPostOutput, error)
}
