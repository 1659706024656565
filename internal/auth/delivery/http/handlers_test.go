package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/auth"
	"blog-platform/internal/middleware"
	"blog-platform/internal/model"
	"blog-platform/pkg/scope"
)

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

type mockUseCase struct {
	registerFunc func(input auth.RegisterInput) (auth.RegisterOutput, error)
	loginFunc    func(input auth.LoginInput) (auth.LoginOutput, error)
	verifyFunc   func(token string) (auth.VerifyEmailOutput, error)
	googleFunc   func(input auth.GoogleSignInInput) (auth.GoogleSignInOutput, error)
	meFunc       func(sc model.Scope) (auth.MeOutput, error)
}

func (m *mockUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.RegisterOutput, error) {
	if m.registerFunc != nil {
		return m.registerFunc(input)
	}
	return auth.RegisterOutput{}, nil
}

func (m *mockUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	if m.loginFunc != nil {
		return m.loginFunc(input)
	}
	return auth.LoginOutput{}, nil
}

func (m *mockUseCase) VerifyEmail(ctx context.Context, token string) (auth.VerifyEmailOutput, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(token)
	}
	return auth.VerifyEmailOutput{}, nil
}

func (m *mockUseCase) GoogleSignIn(ctx context.Context, input auth.GoogleSignInInput) (auth.GoogleSignInOutput, error) {
	if m.googleFunc != nil {
		return m.googleFunc(input)
	}
	return auth.GoogleSignInOutput{}, nil
}

func (m *mockUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	if m.meFunc != nil {
		return m.meFunc(sc)
	}
	return auth.MeOutput{}, nil
}

func newTestServer(uc auth.UseCase) (*gin.Engine, scope.Manager) {
	gin.SetMode(gin.TestMode)
	jwtManager := scope.New("test-secret", time.Hour, "test")
	mw := middleware.New(&mockLogger{}, jwtManager)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1"), h, mw, 1000)
	return r, jwtManager
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Created With Envelope", func(t *testing.T) {
		uc := &mockUseCase{
			registerFunc: func(input auth.RegisterInput) (auth.RegisterOutput, error) {
				return auth.RegisterOutput{User: model.User{
					ID:    "u1",
					Email: input.Email,
					Role:  model.RoleUser,
				}}, nil
			},
		}
		r, _ := newTestServer(uc)

		body := `{"email":"a@b.com","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			ErrorCode int          `json:"error_code"`
			Data      registerResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.ErrorCode != 0 || resp.Data.User.ID != "u1" {
			t.Errorf("unexpected envelope: %s", w.Body.String())
		}
	})

	t.Run("Invalid Body Rejected", func(t *testing.T) {
		r, _ := newTestServer(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"not-an-email","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Duplicate Email Maps To Conflict", func(t *testing.T) {
		uc := &mockUseCase{
			registerFunc: func(input auth.RegisterInput) (auth.RegisterOutput, error) {
				return auth.RegisterOutput{}, auth.ErrEmailTaken
			},
		}
		r, _ := newTestServer(uc)

		body := `{"email":"a@b.com","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("Valid Credentials Return Token", func(t *testing.T) {
		uc := &mockUseCase{
			loginFunc: func(input auth.LoginInput) (auth.LoginOutput, error) {
				return auth.LoginOutput{
					User:  model.User{ID: "u1", Email: input.Email, Role: model.RoleUser},
					Token: "session-token",
				}, nil
			},
		}
		r, _ := newTestServer(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"a@b.com","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data sessionResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Data.Token != "session-token" {
			t.Errorf("unexpected token: %s", resp.Data.Token)
		}
	})

	t.Run("Invalid Credentials Map To Unauthorized", func(t *testing.T) {
		uc := &mockUseCase{
			loginFunc: func(input auth.LoginInput) (auth.LoginOutput, error) {
				return auth.LoginOutput{}, auth.ErrInvalidCredentials
			},
		}
		r, _ := newTestServer(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"a@b.com","password":"wrong-pass"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Unverified Email Maps To Forbidden", func(t *testing.T) {
		uc := &mockUseCase{
			loginFunc: func(input auth.LoginInput) (auth.LoginOutput, error) {
				return auth.LoginOutput{}, auth.ErrEmailNotVerified
			},
		}
		r, _ := newTestServer(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"a@b.com","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})
}

func TestVerifyEmailHandler(t *testing.T) {
	t.Run("Invalid Token Maps To Bad Request", func(t *testing.T) {
		uc := &mockUseCase{
			verifyFunc: func(token string) (auth.VerifyEmailOutput, error) {
				return auth.VerifyEmailOutput{}, auth.ErrInvalidVerifyToken
			},
		}
		r, _ := newTestServer(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/verify-email?token=stale", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Valid Token Signs In", func(t *testing.T) {
		var gotToken string
		uc := &mockUseCase{
			verifyFunc: func(token string) (auth.VerifyEmailOutput, error) {
				gotToken = token
				return auth.VerifyEmailOutput{
					User:  model.User{ID: "u1", EmailVerified: true},
					Token: "session-token",
				}, nil
			},
		}
		r, _ := newTestServer(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/verify-email?token=raw-token", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotToken != "raw-token" {
			t.Errorf("token not forwarded: %s", gotToken)
		}
	})
}

func TestMeHandler(t *testing.T) {
	t.Run("Missing Token Rejected", func(t *testing.T) {
		called := false
		uc := &mockUseCase{
			meFunc: func(sc model.Scope) (auth.MeOutput, error) {
				called = true
				return auth.MeOutput{}, nil
			},
		}
		r, _ := newTestServer(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if called {
			t.Error("use case must not run without authentication")
		}
	})

	t.Run("Returns Caller Profile", func(t *testing.T) {
		uc := &mockUseCase{
			meFunc: func(sc model.Scope) (auth.MeOutput, error) {
				return auth.MeOutput{User: model.User{ID: sc.UserID, Email: sc.Email, Role: sc.Role}}, nil
			},
		}
		r, jwtManager := newTestServer(uc)

		token, err := jwtManager.Generate("u9", "a@b.com", "USER")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data meResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Data.User.ID != "u9" {
			t.Errorf("unexpected profile: %+v", resp.Data.User)
		}
	})
}
