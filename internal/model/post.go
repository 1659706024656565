package model

import "time"

// PostStatus is the publication state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

// Post is a blog post.
type Post struct {
	ID         string
	Title      string
	Content    string
	AuthorID   string
	Tags       []string
	IsFeatured bool
	Status     PostStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
