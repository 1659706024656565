package model

// Scope is the authenticated caller identity attached to a request after
// the auth middleware resolves it. It is immutable request input.
type Scope struct {
	UserID string
	Email  string
	Role   Role
}
