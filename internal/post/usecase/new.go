package usecase

import (
	"blog-platform/internal/post/repository"
	"blog-platform/pkg/log"
)

// implUseCase is the private implementation of post.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new post UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
