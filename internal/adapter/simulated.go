package adapter

import (
	"context"
	"strings"

	"github.com/MKhiriev/music-auth/models"
)

// Identity returned by the simulated resolver.
const (
	SimulatedName      = "Spotify User"
	SimulatedSpotifyID = "spotify_simulated_user"
)

type simulatedResolver struct{}

// NewSimulatedResolver returns an [IdentityResolver] that never contacts
// Spotify: any non-empty token resolves to the same fixed identity.
func NewSimulatedResolver() IdentityResolver {
	return simulatedResolver{}
}

func (simulatedResolver) Resolve(ctx context.Context, token string) (models.ExternalIdentity, error) {
	if err := ctx.Err(); err != nil {
		return models.ExternalIdentity{}, err
	}
	if strings.TrimSpace(token) == "" {
		return models.ExternalIdentity{}, ErrEmptyToken
	}

	return models.ExternalIdentity{Name: SimulatedName, SpotifyID: SimulatedSpotifyID}, nil
}
