package usecase

import (
	"context"

	"blog-platform/internal/model"
	repo "blog-platform/internal/post/repository"
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

// Mock repository with overridable behavior per test
type mockRepository struct {
	createFunc func(opt repo.CreatePostOptions) (model.Post, error)
	getOneFunc func(opt repo.GetOnePostOptions) (model.Post, error)
	listFunc   func(opt repo.ListPostsOptions) ([]model.Post, int, error)
}

func (m *mockRepository) CreatePost(ctx context.Context, opt repo.CreatePostOptions) (model.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Post{}, nil
}

func (m *mockRepository) GetOnePost(ctx context.Context, opt repo.GetOnePostOptions) (model.Post, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Post{}, nil
}

func (m *mockRepository) ListPosts(ctx context.Context, opt repo.ListPostsOptions) ([]model.Post, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}
