package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrInvalidVerifyToken = errors.New("invalid or expired verification token")
	ErrUserNotFound       = errors.New("user not found")
)
