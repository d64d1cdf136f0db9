// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8000}, expected: "localhost:8000"},
		{name: "IP address with port", addr: NetAddress{Host: "0.0.0.0", Port: 9090}, expected: "0.0.0.0:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8000}, expected: ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8000", expectedAddr: NetAddress{Host: "localhost", Port: 8000}},
		{name: "valid IPv4", input: "0.0.0.0:8000", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 8000}},
		{name: "empty host", input: ":8000", expectedAddr: NetAddress{Port: 8000}},
		{name: "missing colon", input: "localhost8000", errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number is a positive integer"},
		{name: "invalid IP address", input: "invalid.host:8000", errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8000",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "mongodb://localhost:27017",
		"-db-name", "music",
		"-c", "/etc/music-auth.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "45m",
		"-request-timeout", "5s",
		"-bcrypt-cost", "12",
		"-log-level", "info",
		"-spotify-api-url", "https://api.spotify.com",
		"-cors-origins", "http://a.example, http://b.example",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
	assert.Equal(t, "music", cfg.Storage.DB.Name)
	assert.Equal(t, "/etc/music-auth.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "https://api.spotify.com", cfg.Adapter.SpotifyAPIURL)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host:port")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})
	require.Error(t, err)
}
