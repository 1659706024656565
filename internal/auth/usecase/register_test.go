package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"blog-platform/internal/auth"
	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
	"blog-platform/pkg/mailer"
)

func newRegisterUC(mRepo *mockRepository, mMail *mockMailer) *implUseCase {
	return New(mRepo, &mockLogger{}, stubManager{}, mMail, &mockGoogle{}, "http://localhost:3000")
}

func TestRegister(t *testing.T) {
	t.Run("Duplicate Email Rejected", func(t *testing.T) {
		mRepo := &mockRepository{
			getOneUserFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
				return model.User{ID: "existing", Email: opt.Email}, nil
			},
		}
		uc := newRegisterUC(mRepo, &mockMailer{})

		_, err := uc.Register(context.Background(), auth.RegisterInput{Email: "a@b.com", Password: "secret123"})
		if !errors.Is(err, auth.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("Creates Unverified User And Sends Email", func(t *testing.T) {
		var created repo.CreateUserOptions
		mRepo := &mockRepository{
			createUserFunc: func(opt repo.CreateUserOptions) (model.User, error) {
				created = opt
				return model.User{ID: "u1", Name: opt.Name, Email: opt.Email}, nil
			},
		}
		mMail := &mockMailer{}
		uc := newRegisterUC(mRepo, mMail)

		out, err := uc.Register(context.Background(), auth.RegisterInput{
			Name:     "Robin",
			Email:    "Robin@Example.COM",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created.Email != "robin@example.com" {
			t.Errorf("email not normalized: %s", created.Email)
		}
		if created.EmailVerified {
			t.Error("new account must start unverified")
		}
		if created.Role != "USER" {
			t.Errorf("expected default role USER, got %s", created.Role)
		}
		if created.PasswordHash == "" || created.PasswordHash == "secret123" {
			t.Error("password must be stored hashed")
		}

		if len(mMail.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(mMail.sent))
		}
		msg := mMail.sent[0]
		if msg.To != "robin@example.com" {
			t.Errorf("unexpected recipient: %s", msg.To)
		}
		if !strings.Contains(msg.BodyText, "http://localhost:3000/verify-email?token=") {
			t.Errorf("verification link missing from body: %s", msg.BodyText)
		}
		if out.User.ID != "u1" {
			t.Errorf("unexpected user: %+v", out.User)
		}
	})

	t.Run("Token Stored Hashed Not Raw", func(t *testing.T) {
		var storedHash string
		mRepo := &mockRepository{
			createUserFunc: func(opt repo.CreateUserOptions) (model.User, error) {
				return model.User{ID: "u1", Email: opt.Email}, nil
			},
			createTokenFunc: func(opt repo.CreateVerificationTokenOptions) error {
				storedHash = opt.TokenHash
				return nil
			},
		}
		mMail := &mockMailer{}
		uc := newRegisterUC(mRepo, mMail)

		if _, err := uc.Register(context.Background(), auth.RegisterInput{Email: "a@b.com", Password: "pw123456"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		link := mMail.sent[0].BodyText
		raw := link[strings.Index(link, "token=")+len("token="):]
		raw = strings.Fields(raw)[0]

		if storedHash == raw {
			t.Error("stored token must be a digest of the emailed token")
		}
		if hashToken(raw) != storedHash {
			t.Error("stored digest must match the emailed token")
		}
	})

	t.Run("Mailer Failure Fails Registration", func(t *testing.T) {
		mRepo := &mockRepository{
			createUserFunc: func(opt repo.CreateUserOptions) (model.User, error) {
				return model.User{ID: "u1"}, nil
			},
		}
		mMail := &mockMailer{sendFunc: func(msg mailer.Message) error {
			return errors.New("smtp down")
		}}
		uc := newRegisterUC(mRepo, mMail)

		if _, err := uc.Register(context.Background(), auth.RegisterInput{Email: "a@b.com", Password: "pw123456"}); err == nil {
			t.Error("expected error when verification email cannot be sent")
		}
	})
}
