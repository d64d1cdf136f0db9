package config

import "errors"

var (
	// ErrMissingTokenSignKey is returned when no token signing secret is
	// configured. There is no fallback secret.
	ErrMissingTokenSignKey = errors.New("token sign key is not set (APP_TOKEN_SIGN_KEY)")

	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration: no HTTP or gRPC address")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
