package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedResolver(t *testing.T) {
	r := NewSimulatedResolver()

	first, err := r.Resolve(context.Background(), "token-a")
	require.NoError(t, err)
	assert.Equal(t, SimulatedSpotifyID, first.SpotifyID)
	assert.Equal(t, SimulatedName, first.Name)

	second, err := r.Resolve(context.Background(), "token-b")
	require.NoError(t, err)
	assert.Equal(t, first, second, "every token resolves to the same identity")

	_, err = r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
