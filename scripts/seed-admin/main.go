// scripts/seed-admin/main.go
//
// Bootstraps the first administrator account. Run once against a fresh
// database; re-running against an existing admin email is a no-op.
//
// Usage:
//   ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=changeme \
//     go run scripts/seed-admin/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"

	"blog-platform/config"
	authRepo "blog-platform/internal/auth/repository"
	authPostgre "blog-platform/internal/auth/repository/postgre"
	"blog-platform/internal/model"
	"blog-platform/pkg/log"
)

func main() {
	email := strings.TrimSpace(strings.ToLower(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL and ADMIN_PASSWORD are required")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping database: %v", err)
	}

	repo := authPostgre.New(db, logger)

	existing, err := repo.GetOneUser(ctx, authRepo.GetOneUserOptions{Email: email})
	if err != nil {
		logger.Fatalf(ctx, "Failed to look up admin: %v", err)
	}
	if existing.ID != "" {
		logger.Infof(ctx, "Admin %s already exists (id=%s), nothing to do", email, existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatalf(ctx, "Failed to hash password: %v", err)
	}

	// Seeded admins skip the verification email.
	admin, err := repo.CreateUser(ctx, authRepo.CreateUserOptions{
		Name:          "Administrator",
		Email:         email,
		PasswordHash:  string(hash),
		Role:          string(model.RoleAdmin),
		Status:        string(model.UserStatusActive),
		EmailVerified: true,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create admin: %v", err)
	}

	logger.Infof(ctx, "Admin %s created (id=%s)", admin.Email, admin.ID)
}
