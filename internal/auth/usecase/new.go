package usecase

import (
	"time"

	"blog-platform/internal/auth/repository"
	"blog-platform/pkg/googleauth"
	"blog-platform/pkg/log"
	"blog-platform/pkg/mailer"
	"blog-platform/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	jwtManager scope.Manager
	mailer     mailer.IMailer
	google     googleauth.IGoogleAuth

	appURL    string
	verifyTTL time.Duration
}

// New creates a new auth UseCase implementation. appURL is the external
// base URL used to build verification links.
func New(repo repository.Repository, l log.Logger, jwtManager scope.Manager, m mailer.IMailer, g googleauth.IGoogleAuth, appURL string) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		jwtManager: jwtManager,
		mailer:     m,
		google:     g,
		appURL:     appURL,
		verifyTTL:  24 * time.Hour,
	}
}
