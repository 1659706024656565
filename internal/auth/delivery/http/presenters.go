package http

import (
	"time"

	"blog-platform/internal/auth"
	"blog-platform/internal/model"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"omitempty,max=255"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone"    binding:"omitempty,max=32"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type googleReq struct {
	Code string `json:"code" binding:"required"`
}

func (r googleReq) validate() error { return nil }

func (r googleReq) toInput() auth.GoogleSignInInput {
	return auth.GoogleSignInInput{Code: r.Code}
}

// --- Response DTOs ---

type userResp struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          string(u.Role),
		Status:        string(u.Status),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type registerResp struct {
	User userResp `json:"user"`
}

func (h *handler) newRegisterResp(out auth.RegisterOutput) registerResp {
	return registerResp{User: newUserResp(out.User)}
}

type sessionResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) sessionResp {
	return sessionResp{User: newUserResp(out.User), Token: out.Token}
}

func (h *handler) newVerifyEmailResp(out auth.VerifyEmailOutput) sessionResp {
	return sessionResp{User: newUserResp(out.User), Token: out.Token}
}

type googleResp struct {
	User      userResp `json:"user"`
	Token     string   `json:"token"`
	IsNewUser bool     `json:"isNewUser"`
}

func (h *handler) newGoogleResp(out auth.GoogleSignInOutput) googleResp {
	return googleResp{
		User:      newUserResp(out.User),
		Token:     out.Token,
		IsNewUser: out.IsNewUser,
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out auth.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
