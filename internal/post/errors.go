package post

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrMissingAuthor = errors.New("caller identity is required to create a post")
)
