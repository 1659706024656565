package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"blog-platform/internal/auth"
	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
)

func verifiedUser(t *testing.T, password string) model.User {
	t.Helper()
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return model.User{
		ID:            "u1",
		Email:         "a@b.com",
		PasswordHash:  hash,
		Role:          model.RoleUser,
		Status:        model.UserStatusActive,
		EmailVerified: true,
	}
}

func TestLogin(t *testing.T) {
	t.Run("Unknown Email Rejected", func(t *testing.T) {
		uc := newRegisterUC(&mockRepository{}, &mockMailer{})
		_, err := uc.Login(context.Background(), auth.LoginInput{Email: "ghost@b.com", Password: "x"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		user := verifiedUser(t, "correct-horse")
		mRepo := &mockRepository{
			getOneUserFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
				return user, nil
			},
		}
		uc := newRegisterUC(mRepo, &mockMailer{})

		_, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.com", Password: "battery-staple"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Unverified Email Rejected", func(t *testing.T) {
		user := verifiedUser(t, "correct-horse")
		user.EmailVerified = false
		mRepo := &mockRepository{
			getOneUserFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
				return user, nil
			},
		}
		uc := newRegisterUC(mRepo, &mockMailer{})

		_, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.com", Password: "correct-horse"})
		if !errors.Is(err, auth.ErrEmailNotVerified) {
			t.Errorf("expected ErrEmailNotVerified, got %v", err)
		}
	})

	t.Run("OAuth Only Account Has No Password Login", func(t *testing.T) {
		user := verifiedUser(t, "irrelevant")
		user.PasswordHash = ""
		mRepo := &mockRepository{
			getOneUserFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
				return user, nil
			},
		}
		uc := newRegisterUC(mRepo, &mockMailer{})

		_, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.com", Password: "irrelevant"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Valid Credentials Issue Token", func(t *testing.T) {
		user := verifiedUser(t, "correct-horse")
		mRepo := &mockRepository{
			getOneUserFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
				return user, nil
			},
		}
		uc := newRegisterUC(mRepo, &mockMailer{})

		out, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.com", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token != "token-u1" {
			t.Errorf("unexpected token: %s", out.Token)
		}
	})
}

func TestVerifyEmail(t *testing.T) {
	t.Run("Empty Token Rejected", func(t *testing.T) {
		uc := newRegisterUC(&mockRepository{}, &mockMailer{})
		_, err := uc.VerifyEmail(context.Background(), "")
		if !errors.Is(err, auth.ErrInvalidVerifyToken) {
			t.Errorf("expected ErrInvalidVerifyToken, got %v", err)
		}
	})

	t.Run("Unknown Token Rejected", func(t *testing.T) {
		uc := newRegisterUC(&mockRepository{}, &mockMailer{})
		_, err := uc.VerifyEmail(context.Background(), "deadbeef")
		if !errors.Is(err, auth.ErrInvalidVerifyToken) {
			t.Errorf("expected ErrInvalidVerifyToken, got %v", err)
		}
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		mRepo := &mockRepository{
			getTokenFunc: func(tokenHash string) (repo.VerificationToken, error) {
				return repo.VerificationToken{
					ID:        "t1",
					UserID:    "u1",
					TokenHash: tokenHash,
					ExpiresAt: time.Now().Add(-time.Hour),
				}, nil
			},
		}
		uc := newRegisterUC(mRepo, &mockMailer{})

		_, err := uc.VerifyEmail(context.Background(), "deadbeef")
		if !errors.Is(err, auth.ErrInvalidVerifyToken) {
			t.Errorf("expected ErrInvalidVerifyToken, got %v", err)
		}
	})

	t.Run("Valid Token Verifies And Signs In", func(t *testing.T) {
		var updated repo.UpdateUserOptions
		deleted := false
		mRepo := &mockRepository{
			getTokenFunc: func(tokenHash string) (repo.VerificationToken, error) {
				return repo.VerificationToken{
					ID:        "t1",
					UserID:    "u1",
					TokenHash: tokenHash,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
			updateUserFunc: func(opt repo.UpdateUserOptions) (model.User, error) {
				updated = opt
				return model.User{ID: opt.ID, Email: "a@b.com", Role: model.RoleUser, EmailVerified: true}, nil
			},
			deleteTokenFunc: func(userID string) error {
				deleted = true
				return nil
			},
		}
		uc := newRegisterUC(mRepo, &mockMailer{})

		out, err := uc.VerifyEmail(context.Background(), "deadbeef")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.SetEmailVerified || !updated.EmailVerified {
			t.Errorf("user not marked verified: %+v", updated)
		}
		if !deleted {
			t.Error("token must be single-use")
		}
		if out.Token != "token-u1" {
			t.Errorf("expected session token, got %s", out.Token)
		}
	})
}
