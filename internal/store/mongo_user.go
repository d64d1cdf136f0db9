package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// userDocument is the BSON shape of a user in the "users" collection.
// Absent optional fields are omitted from the document entirely.
type userDocument struct {
	ID          string    `bson:"id"`
	Email       *string   `bson:"email,omitempty"`
	Password    *string   `bson:"password,omitempty"`
	Name        *string   `bson:"name,omitempty"`
	ProfileName *string   `bson:"profile_name,omitempty"`
	SpotifyID   *string   `bson:"spotify_id,omitempty"`
	DNA         *string   `bson:"dna,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func newUserDocument(u models.User) userDocument {
	return userDocument{
		ID:          u.ID,
		Email:       u.Email.Ptr(),
		Password:    u.Password.Ptr(),
		Name:        u.Name.Ptr(),
		ProfileName: u.ProfileName.Ptr(),
		SpotifyID:   u.SpotifyID.Ptr(),
		DNA:         u.DNA.Ptr(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:          d.ID,
		Email:       models.FromPtr(d.Email),
		Password:    models.FromPtr(d.Password),
		Name:        models.FromPtr(d.Name),
		ProfileName: models.FromPtr(d.ProfileName),
		SpotifyID:   models.FromPtr(d.SpotifyID),
		DNA:         models.FromPtr(d.DNA),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// mongoUserRepository is the MongoDB implementation of [UserRepository].
type mongoUserRepository struct {
	logger *logger.Logger
	coll   *mongo.Collection
}

// NewMongoUserRepository constructs a [UserRepository] over the given
// collection. Indexes are expected to exist already; see [EnsureUserIndexes].
func NewMongoUserRepository(coll *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Str("collection", coll.Name()).Msg("creating mongo user repository")
	return &mongoUserRepository{
		coll:   coll,
		logger: logger,
	}
}

// NewConnectMongo connects to the deployment at uri, verifies it with a
// ping and returns the client together with the users collection of dbName.
func NewConnectMongo(ctx context.Context, uri, dbName string, log *logger.Logger) (*mongo.Client, *mongo.Collection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Msg("error occurred during mongo connection")
		return nil, nil, fmt.Errorf("error occurred during mongo connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Msg("error connecting mongo (ping)")
		return nil, nil, errors.Join(fmt.Errorf("error connecting mongo: %w", err), client.Disconnect(ctx))
	}
	log.Info().Str("database", dbName).Msg("connected to mongo successfully")

	coll := client.Database(dbName).Collection(models.User{}.TableName())
	if err = EnsureUserIndexes(ctx, coll); err != nil {
		return nil, nil, errors.Join(err, client.Disconnect(ctx))
	}

	return client, coll, nil
}

// EnsureUserIndexes creates the unique indexes backing id, email and
// spotify_id uniqueness. email and spotify_id are sparse because each is
// absent on one kind of account.
func EnsureUserIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("users_email_unique"),
		},
		{
			Keys:    bson.D{{Key: "spotify_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("users_spotify_id_unique"),
		},
	})
	if err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	return nil
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC().Truncate(time.Millisecond)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	if _, err := r.coll.InsertOne(ctx, newUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug().Str("func", "*mongoUserRepository.CreateUser").Msg("duplicate key")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*mongoUserRepository.FindUserByEmail", bson.M{"email": email})
}

func (r *mongoUserRepository) FindUserBySpotifyID(ctx context.Context, spotifyID string) (models.User, error) {
	return r.findOne(ctx, "*mongoUserRepository.FindUserBySpotifyID", bson.M{"spotify_id": spotifyID})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*mongoUserRepository.FindUserByID", bson.M{"id": id})
}

func (r *mongoUserRepository) UpdateUserDNA(ctx context.Context, id, dna string) error {
	log := logger.FromContext(ctx)

	update := bson.M{"$set": bson.M{"dna": dna, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.UpdateUserDNA").Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, funcName string, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}
