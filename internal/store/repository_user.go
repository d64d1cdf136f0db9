package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/models"
)

var userColumns = []string{
	"id", "email", "password", "name", "profile_name", "spotify_id", "dna", "created_at", "updated_at",
}

// userRepository is the SQL implementation of [UserRepository]. It serves
// both PostgreSQL and SQLite; the [DB] carries the placeholder format.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user as given. The caller assigns the id; timestamps are
// set here when zero.
//
// A unique violation on id, email or spotify_id maps to [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Email.Ptr(),
			user.Password.Ptr(),
			user.Name.Ptr(),
			user.ProfileName.Ptr(),
			user.SpotifyID.Ptr(),
			user.DNA.Ptr(),
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("unique constraint violated")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

func (r *userRepository) FindUserBySpotifyID(ctx context.Context, spotifyID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserBySpotifyID", sq.Eq{"spotify_id": spotifyID})
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

// UpdateUserDNA sets dna (and updated_at) on the record with the given id.
func (r *userRepository) UpdateUserDNA(ctx context.Context, id, dna string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.User{}.TableName()).
		Set("dna", dna).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserDNA").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserDNA").Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func scanUser(row sq.RowScanner) (models.User, error) {
	var user models.User
	var email, password, name, profileName, spotifyID, dna sql.NullString

	if err := row.Scan(&user.ID, &email, &password, &name, &profileName, &spotifyID, &dna, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, err
	}

	user.Email = fromNullString(email)
	user.Password = fromNullString(password)
	user.Name = fromNullString(name)
	user.ProfileName = fromNullString(profileName)
	user.SpotifyID = fromNullString(spotifyID)
	user.DNA = fromNullString(dna)

	return user, nil
}

func fromNullString(s sql.NullString) models.Optional[string] {
	if !s.Valid {
		return models.None[string]()
	}
	return models.Some(s.String)
}
