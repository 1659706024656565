package googleauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Config holds Google OAuth client settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Profile is the subset of the Google userinfo payload the service needs.
type Profile struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}

// IGoogleAuth exchanges an authorization code for a verified Google profile.
//
//go:generate mockery --name IGoogleAuth
type IGoogleAuth interface {
	Exchange(ctx context.Context, code string) (Profile, error)
}

type implClient struct {
	oauth *oauth2.Config
}

// New creates a Google OAuth client.
func New(cfg Config) IGoogleAuth {
	return &implClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Exchange trades the authorization code for tokens and fetches the
// user's profile from the Google userinfo endpoint.
func (c *implClient) Exchange(ctx context.Context, code string) (Profile, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("googleauth: code exchange: %w", err)
	}

	svc, err := goauth2.NewService(ctx, option.WithTokenSource(c.oauth.TokenSource(ctx, token)))
	if err != nil {
		return Profile{}, fmt.Errorf("googleauth: userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return Profile{}, fmt.Errorf("googleauth: fetch userinfo: %w", err)
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail
	return Profile{
		Subject:       info.Id,
		Email:         info.Email,
		Name:          info.Name,
		EmailVerified: verified,
	}, nil
}
