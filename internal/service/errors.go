package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrDuplicateAccount   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredential  = errors.New("missing spotify token")
	ErrExternalIdentity   = errors.New("external identity could not be resolved")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
