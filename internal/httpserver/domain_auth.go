package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "blog-platform/internal/auth/delivery/http"
	authRepo "blog-platform/internal/auth/repository/postgre"
	authUC "blog-platform/internal/auth/usecase"
	"blog-platform/internal/middleware"
)

// setupAuthDomain initializes the auth domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := authRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := authUC.New(repo, srv.l, srv.jwtManager, srv.mailer, srv.googleAuth, srv.appBaseURL)

	// 3. HTTP Handler
	h := authHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/auth/*
	authHTTP.RegisterRoutes(api, h, mw, srv.authRatePerMin)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
