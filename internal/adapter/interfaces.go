// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter resolves external (Spotify) access tokens to the identity
// of their holder.
//
// The primary abstraction is [IdentityResolver], which decouples the auth
// service from the identity provider. Two implementations ship with the
// package: [NewSimulatedResolver], which returns a fixed identity for every
// token, and [NewSpotifyResolver], which queries the Spotify Web API
// "/v1/me" endpoint with the token as an OAuth2 bearer credential.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/music-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_resolver_mock.go -package=mock

// IdentityResolver maps an external access token to the identity it was
// issued for.
type IdentityResolver interface {
	// Resolve returns the display name and stable Spotify user id of the
	// holder of token. Returns an error if the token is rejected or the
	// provider cannot be reached.
	Resolve(ctx context.Context, token string) (models.ExternalIdentity, error)
}
