// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/music-auth/models"
)

// StructuredConfig is the top-level configuration container for the
// music-auth server. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the credential store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network addresses, timeouts and CORS settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of outbound integrations (Spotify Web API).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the credential store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds security parameters of the auth service.
type App struct {
	// TokenSignKey is the HMAC secret used to sign access tokens.
	// Required: the server refuses to start without it. Never logged.
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long an issued token remains valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor used for password hashing.
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`

	// Build is set by main from linker flags, never from env or files.
	Build models.AppBuildInfo `json:"build"`
}

// Server holds listener settings.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	GRPCAddress string `env:"GRPC_ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// Empty means every origin is allowed.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// DB holds the credential store connection string. The scheme selects the
// backend: mongodb, postgres, sqlite or memory.
type DB struct {
	// DSN may carry credentials and is never logged.
	DSN string `env:"DATABASE_URI" json:"-"`

	// Name is the MongoDB database name.
	Name string `env:"NAME"`
}

// Adapter holds settings of the Spotify identity resolver.
type Adapter struct {
	// SpotifyAPIURL is the base URL of the Spotify Web API. When empty the
	// server resolves every Spotify token to a fixed simulated identity.
	SpotifyAPIURL string `env:"SPOTIFY_API_URL"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. Environment variables take precedence over flags, flags
// over the JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
