package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/middleware"
	postHTTP "blog-platform/internal/post/delivery/http"
	postRepo "blog-platform/internal/post/repository/postgre"
	postUC "blog-platform/internal/post/usecase"
)

// setupPostDomain initializes the post domain and registers its routes.
func (srv HTTPServer) setupPostDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := postRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := postUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := postHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/posts
	postHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Post domain registered")
	return nil
}
