package usecase

import (
	"context"
	"fmt"
	"strings"

	"blog-platform/internal/auth"
	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
	"blog-platform/pkg/mailer"
)

// Register creates an unverified account and sends the verification
// email. There is no auto sign-in: the user gets a session only after
// verifying the address.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.RegisterOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return auth.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return auth.RegisterOutput{}, auth.ErrEmailTaken
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register: %v", err)
		return auth.RegisterOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:          input.Name,
		Email:         email,
		PasswordHash:  hash,
		Phone:         input.Phone,
		Role:          string(model.RoleUser),
		Status:        string(model.UserStatusActive),
		EmailVerified: false,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.RegisterOutput{}, err
	}

	if err := uc.sendVerificationEmail(ctx, user); err != nil {
		uc.l.Errorf(ctx, "uc.Register sendVerificationEmail: %v", err)
		return auth.RegisterOutput{}, err
	}

	return auth.RegisterOutput{User: user}, nil
}

func (uc *implUseCase) sendVerificationEmail(ctx context.Context, user model.User) error {
	raw, digest, err := newVerificationToken()
	if err != nil {
		return err
	}

	if err := uc.repo.CreateVerificationToken(ctx, repo.CreateVerificationTokenOptions{
		UserID:    user.ID,
		TokenHash: digest,
		ExpiresAt: timeNow().Add(uc.verifyTTL),
	}); err != nil {
		return err
	}

	name := user.Name
	if name == "" {
		name = "User"
	}
	verificationURL := fmt.Sprintf("%s/verify-email?token=%s", uc.appURL, raw)

	return uc.mailer.Send(ctx, mailer.Message{
		To:       user.Email,
		Subject:  "Verify Your Email - Blog Platform",
		BodyText: verificationBodyText(name, verificationURL),
		BodyHTML: verificationBodyHTML(name, verificationURL),
	})
}

func verificationBodyText(name, url string) string {
	return fmt.Sprintf(`Hello %s,

Thank you for signing up for Blog Platform. Please verify your email address by visiting: %s

If you did not request this, please ignore this email.

Best regards,
Blog Platform Team`, name, url)
}

func verificationBodyHTML(name, url string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
  <h2 style="color: #333;">Verify Your Email</h2>
  <p>Hello %s,</p>
  <p>Thank you for signing up for Blog Platform. Please verify your email address by clicking the button below:</p>
  <a href="%s" style="display: inline-block; padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px;">Verify Email</a>
  <p>If you did not request this, please ignore this email.</p>
  <p>Best regards,<br>Blog Platform Team</p>
</div>`, name, url)
}
