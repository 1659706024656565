package post

import (
	"blog-platform/internal/model"
	"blog-platform/pkg/paginator"
)

// --- UseCase Inputs ---

type CreatePostInput struct {
	Title      string
	Content    string
	Tags       []string
	Status     model.PostStatus
	IsFeatured bool
}

// ListPostsInput is the full filter descriptor for listing posts.
// IsFeatured is tri-state: nil means "no filter", not "false".
type ListPostsInput struct {
	Search     string
	Tags       []string
	IsFeatured *bool
	Status     string
	AuthorID   string
	Pagination paginator.Options
}

// --- UseCase Outputs ---

type CreatePostOutput struct {
	Post model.Post
}

type ListPostsOutput struct {
	Posts      []model.Post
	Total      int
	TotalPages int
	Pagination paginator.Options
}

type DetailPostOutput struct {
	Post model.Post
}
