package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"blog-platform/pkg/googleauth"
	"blog-platform/pkg/log"
	"blog-platform/pkg/mailer"
	"blog-platform/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	jwtManager scope.Manager
	mailer     mailer.IMailer
	googleAuth googleauth.IGoogleAuth

	// App knobs
	appBaseURL     string
	authRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	JWTManager scope.Manager
	Mailer     mailer.IMailer
	GoogleAuth googleauth.IGoogleAuth

	AppBaseURL     string
	AuthRatePerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		jwtManager:     cfg.JWTManager,
		mailer:         cfg.Mailer,
		googleAuth:     cfg.GoogleAuth,
		appBaseURL:     cfg.AppBaseURL,
		authRatePerMin: cfg.AuthRatePerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.mailer == nil {
		return errors.New("mailer is required")
	}
	return nil
}
