package service

import (
	"context"

	"github.com/MKhiriev/music-auth/models"
)

// AuthService implements account creation and authentication.
type AuthService interface {
	// Signup creates a password account and returns it with an access token.
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)

	// Signin checks password credentials and issues an access token.
	Signin(ctx context.Context, req models.SigninRequest) (models.AccessTokenResponse, error)

	// FederatedRegister links (or re-links) the Spotify identity behind
	// externalToken to a user record and issues a token for it.
	FederatedRegister(ctx context.Context, externalToken string) (models.FederatedRegisterResponse, error)

	// ParseToken validates a token issued by this service.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// CurrentUser returns the user a valid token was issued for.
	CurrentUser(ctx context.Context, userID string) (models.User, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// IDGenerator produces random opaque identifiers.
type IDGenerator interface {
	Generate() string
}
