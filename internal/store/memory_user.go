package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/models"
)

// memoryUserRepository keeps users in process memory. Intended for local
// development and tests; contents are lost on restart.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
	bySpot  map[string]string
	logger  *logger.Logger
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
		bySpot:  make(map[string]string),
		logger:  logger,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; ok {
		return models.User{}, ErrUserAlreadyExists
	}
	email, hasEmail := user.Email.Get()
	if _, ok := r.byEmail[email]; hasEmail && ok {
		return models.User{}, ErrUserAlreadyExists
	}
	spotifyID, hasSpotify := user.SpotifyID.Get()
	if _, ok := r.bySpot[spotifyID]; hasSpotify && ok {
		return models.User{}, ErrUserAlreadyExists
	}

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	r.byID[user.ID] = user
	if hasEmail {
		r.byEmail[email] = user.ID
	}
	if hasSpotify {
		r.bySpot[spotifyID] = user.ID
	}

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findByIndex(ctx, r.byEmail, email)
}

func (r *memoryUserRepository) FindUserBySpotifyID(ctx context.Context, spotifyID string) (models.User, error) {
	return r.findByIndex(ctx, r.bySpot, spotifyID)
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (r *memoryUserRepository) UpdateUserDNA(ctx context.Context, id, dna string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return ErrNoUserWasFound
	}
	user.DNA = models.Some(dna)
	user.UpdatedAt = time.Now().UTC()
	r.byID[id] = user

	return nil
}

func (r *memoryUserRepository) findByIndex(ctx context.Context, index map[string]string, key string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := index[key]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return r.byID[id], nil
}
