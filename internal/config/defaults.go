package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer    = "music-auth"
	defaultTokenDuration  = 30 * time.Minute
	defaultMongoDBName    = "music_app"
	defaultSpotifyTimeout = 10 * time.Second
	defaultLogLevel       = "debug"
)

// applyDefaults fills unset optional fields. The token sign key has no
// default on purpose and is checked by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = defaultMongoDBName
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultSpotifyTimeout
	}
}
