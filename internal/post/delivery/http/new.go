package http

import (
	"blog-platform/internal/post"
	"blog-platform/pkg/log"
)

type handler struct {
	l  log.Logger
	uc post.UseCase
}

// New creates a new HTTP handler for the post domain.
func New(l log.Logger, uc post.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
