package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the only token type issued by the service.
const TokenTypeBearer = "bearer"

// Token wraps a JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent to the client.
//
// UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// AccessTokenResponse is returned by signin.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the body of every client-facing error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
