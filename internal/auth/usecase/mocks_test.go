package usecase

import (
	"context"

	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
	"blog-platform/pkg/googleauth"
	"blog-platform/pkg/mailer"
	"blog-platform/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepository struct {
	createUserFunc  func(opt repo.CreateUserOptions) (model.User, error)
	getOneUserFunc  func(opt repo.GetOneUserOptions) (model.User, error)
	updateUserFunc  func(opt repo.UpdateUserOptions) (model.User, error)
	createTokenFunc func(opt repo.CreateVerificationTokenOptions) error
	getTokenFunc    func(tokenHash string) (repo.VerificationToken, error)
	deleteTokenFunc func(userID string) error
}

func (m *mockRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if m.getOneUserFunc != nil {
		return m.getOneUserFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockRepository) CreateVerificationToken(ctx context.Context, opt repo.CreateVerificationTokenOptions) error {
	if m.createTokenFunc != nil {
		return m.createTokenFunc(opt)
	}
	return nil
}

func (m *mockRepository) GetVerificationToken(ctx context.Context, tokenHash string) (repo.VerificationToken, error) {
	if m.getTokenFunc != nil {
		return m.getTokenFunc(tokenHash)
	}
	return repo.VerificationToken{}, nil
}

func (m *mockRepository) DeleteVerificationTokens(ctx context.Context, userID string) error {
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(userID)
	}
	return nil
}

type mockMailer struct {
	sendFunc func(msg mailer.Message) error
	sent     []mailer.Message
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFunc != nil {
		return m.sendFunc(msg)
	}
	return nil
}

type mockGoogle struct {
	profile googleauth.Profile
	err     error
}

func (m *mockGoogle) Exchange(ctx context.Context, code string) (googleauth.Profile, error) {
	return m.profile, m.err
}

type stubManager struct{}

func (stubManager) Generate(userID, email, role string) (string, error) {
	return "token-" + userID, nil
}

func (stubManager) Verify(token string) (*scope.Claims, error) {
	return nil, scope.ErrInvalidToken
}
