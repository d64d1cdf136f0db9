package models

import "time"

// User represents a stored account. Password-based accounts carry Email and
// Password, federated (Spotify) accounts carry SpotifyID and DNA.
type User struct {
	// ID is a random UUID assigned at creation. It never changes and is used
	// as the "sub" claim of issued tokens.
	ID string `json:"id"`

	// Email is unique within the store. Required for password accounts.
	Email Optional[string] `json:"email,omitzero"`

	// Password is the bcrypt hash of the user's password. It is never
	// plaintext and never serialized to clients.
	Password Optional[string] `json:"-"`

	Name        Optional[string] `json:"name,omitzero"`
	ProfileName Optional[string] `json:"profile_name,omitzero"`

	// SpotifyID identifies a federated account. Unique per identity.
	SpotifyID Optional[string] `json:"spotify_id,omitzero"`

	// DNA is an opaque random value regenerated on every federated
	// registration.
	DNA Optional[string] `json:"dna,omitzero"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TableName returns the name of the table (or collection) holding users.
func (u User) TableName() string {
	return "users"
}

// SignupRequest is the payload of the signup operation.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	ProfileName string `json:"profile_name"`
}

// SignupResponse is the created user together with its access token.
type SignupResponse struct {
	User
	Token string `json:"token"`
}

// SigninRequest carries password credentials. Over HTTP they arrive
// form-encoded as "username" and "password".
type SigninRequest struct {
	Email    string `json:"username"`
	Password string `json:"password"`
}

// FederatedRegisterRequest carries the access token obtained from Spotify.
type FederatedRegisterRequest struct {
	SpotifyToken string `json:"spotify_token"`
}

// FederatedRegisterResponse returns the token issued for the linked account.
type FederatedRegisterResponse struct {
	UserToken string `json:"user_token"`
}

// ExternalIdentity is what an identity provider tells us about the holder of
// an external token.
type ExternalIdentity struct {
	Name      string `json:"display_name"`
	SpotifyID string `json:"id"`
}
