package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/utils"
	"github.com/MKhiriev/music-auth/models"
	"golang.org/x/oauth2"
)

const currentUserPath = "/v1/me"

type spotifyResolver struct {
	baseURL string
	timeout time.Duration

	// base is the round tripper wrapped by the per-request oauth2 transport.
	base http.RoundTripper

	logger *logger.Logger
}

// NewSpotifyResolver constructs an [IdentityResolver] backed by the Spotify
// Web API at cfg.SpotifyAPIURL (e.g. "https://api.spotify.com").
//
// Returns an error if the URL is empty or cannot be parsed.
func NewSpotifyResolver(cfg config.Adapter, logger *logger.Logger) (IdentityResolver, error) {
	baseURL, err := normalizeBaseURL(cfg.SpotifyAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid spotify api url: %w", err)
	}

	return &spotifyResolver{
		baseURL: baseURL,
		timeout: cfg.RequestTimeout,
		base:    http.DefaultTransport,
		logger:  logger,
	}, nil
}

// NewIdentityResolver picks the live resolver when a Spotify API URL is
// configured and the simulated one otherwise.
func NewIdentityResolver(cfg config.Adapter, logger *logger.Logger) (IdentityResolver, error) {
	if strings.TrimSpace(cfg.SpotifyAPIURL) == "" {
		logger.Info().Msg("spotify api url not set, using simulated identity resolver")
		return NewSimulatedResolver(), nil
	}

	logger.Info().Str("url", cfg.SpotifyAPIURL).Msg("using spotify identity resolver")
	return NewSpotifyResolver(cfg, logger)
}

// Resolve implements [IdentityResolver]. It sends GET /v1/me with token as
// the OAuth2 bearer credential and decodes the profile's "id" and
// "display_name".
func (s *spotifyResolver) Resolve(ctx context.Context, token string) (models.ExternalIdentity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.ExternalIdentity{}, ErrEmptyToken
	}

	client := utils.NewHTTPClient(s.baseURL, s.timeout, &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   s.base,
		},
	})

	var identity models.ExternalIdentity
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&identity).
		Get(currentUserPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*spotifyResolver.Resolve").Msg("spotify request failed")
		return models.ExternalIdentity{}, fmt.Errorf("spotify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().Int("status", resp.StatusCode()).Msg("spotify rejected request")
		return models.ExternalIdentity{}, err
	}

	if identity.SpotifyID == "" {
		return models.ExternalIdentity{}, ErrIncompleteIdentity
	}

	return identity, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
