package auth

import "blog-platform/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type LoginInput struct {
	Email    string
	Password string
}

type GoogleSignInInput struct {
	Code string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User model.User
}

type LoginOutput struct {
	User  model.User
	Token string
}

// VerifyEmailOutput carries a session token: verification signs the user
// in automatically.
type VerifyEmailOutput struct {
	User  model.User
	Token string
}

type GoogleSignInOutput struct {
	User      model.User
	Token     string
	IsNewUser bool
}

type MeOutput struct {
	User model.User
}
