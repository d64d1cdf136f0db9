package store

import (
	"context"

	"github.com/MKhiriev/music-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store: a collection of user records
// addressed by exact-match lookups and partial updates.
//
// Every backend enforces uniqueness of id, email and spotify_id, so a
// concurrent duplicate insert fails with [ErrUserAlreadyExists] instead of
// creating a second record.
type UserRepository interface {
	// CreateUser inserts a new record (insert_one).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the record with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserBySpotifyID returns the record linked to the given Spotify
	// identity or [ErrNoUserWasFound].
	FindUserBySpotifyID(ctx context.Context, spotifyID string) (models.User, error)

	// FindUserByID returns the record with the given id or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateUserDNA sets only the dna field of the record with the given id
	// (update_one). Returns [ErrNoUserWasFound] when nothing matched.
	UpdateUserDNA(ctx context.Context, id, dna string) error
}
