// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// music-auth HTTP and gRPC transports.
//
// All Msg* constants are client-facing strings written into HTTP "detail"
// bodies and gRPC status messages. Keeping them in one place keeps both
// transports worded identically.
package app

const (
	// MsgInvalidDataProvided is returned when signup data fails validation
	// (missing email or password, malformed email).
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidForm is returned when a form-encoded body cannot be parsed.
	MsgInvalidForm = "Invalid form was passed"

	// MsgEmailAlreadyRegistered is returned when a signup uses an email that
	// already belongs to an account.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgMissingSpotifyToken is returned when a Spotify registration carries
	// no token.
	MsgMissingSpotifyToken = "Missing Spotify token"

	// MsgSpotifyIdentityUnavailable is returned when the Spotify token cannot
	// be resolved to an identity.
	MsgSpotifyIdentityUnavailable = "Could not resolve Spotify identity"

	// MsgCouldNotValidateCredentials is returned when a bearer token is
	// missing, malformed, expired or signed with another key.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgUserNotFound is returned when a valid token refers to a user that no
	// longer exists.
	MsgUserNotFound = "User not found"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not Found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
