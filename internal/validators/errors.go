package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptySpotifyToken = errors.New("spotify token is required")
)
