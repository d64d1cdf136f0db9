// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",

	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_TOKEN_DURATION",
	"APP_BCRYPT_COST",
	"APP_LOG_LEVEL",

	"SERVER_ADDRESS",
	"SERVER_GRPC_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_CORS_ALLOWED_ORIGINS",

	"STORAGE_DB_DATABASE_URI",
	"STORAGE_DB_NAME",

	"ADAPTER_SPOTIFY_API_URL",
	"ADAPTER_REQUEST_TIMEOUT",
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_BCRYPT_COST":    "12",
		"APP_LOG_LEVEL":      "info",

		"SERVER_ADDRESS":              "localhost:8000",
		"SERVER_GRPC_ADDRESS":         "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":      "30s",
		"SERVER_CORS_ALLOWED_ORIGINS": "http://a.example,http://b.example",

		"STORAGE_DB_DATABASE_URI": "mongodb://localhost:27017",
		"STORAGE_DB_NAME":         "music_app",

		"ADAPTER_SPOTIFY_API_URL": "https://api.spotify.com",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowedOrigins)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
	assert.Equal(t, "music_app", cfg.Storage.DB.Name)

	assert.Equal(t, "https://api.spotify.com", cfg.Adapter.SpotifyAPIURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_DURATION": "invalid_duration",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBcryptCost(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_BCRYPT_COST": "ten",
	})

	require.Error(t, parseEnv(&StructuredConfig{}))
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads. t.Setenv restores
// the previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
