package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/music-auth/internal/adapter"
	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/crypto"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/store"
	"github.com/MKhiriev/music-auth/internal/utils"
	"github.com/MKhiriev/music-auth/internal/validators"
	"github.com/MKhiriev/music-auth/models"
)

// authService is the concrete implementation of AuthService.
// It handles password accounts, federated (Spotify) accounts and the JWT
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// identityResolver maps Spotify access tokens to {name, spotify_id}.
	identityResolver adapter.IdentityResolver

	hasher crypto.PasswordHasher

	validator validators.Validator

	// ids generates user ids; dna generates the per-login dna value.
	ids IDGenerator
	dna IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and identity resolver and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, identityResolver adapter.IdentityResolver, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		identityResolver: identityResolver,
		hasher:           crypto.NewBcryptHasher(cfg.BcryptCost),
		validator:        validators.NewUserValidator(),
		ids:              utils.NewUUIDGenerator(),
		dna:              utils.NewDNAGenerator(),
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Signup creates a password account.
//
// The email is checked for an existing account first; the store's unique
// constraint catches a concurrent signup that passes the check, so both paths
// end in ErrDuplicateAccount.
//
// Returns the stored user together with a token whose subject is the new id,
// or:
//   - ErrInvalidDataProvided if email or password is empty, the email is not
//     a bare address or the password is longer than bcrypt accepts.
//   - ErrDuplicateAccount if the email is taken.
//   - A wrapped storage error otherwise.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Info().Err(err).Msg("invalid signup data provided")
		return models.SignupResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	req.Email = validators.NormalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Str("email", req.Email).Msg("email already registered")
		return models.SignupResponse{}, ErrDuplicateAccount
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.SignupResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrEmptyPassword) || errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.SignupResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.SignupResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:          a.ids.Generate(),
		Email:       models.Some(req.Email),
		Password:    models.Some(hash),
		Name:        optionalString(req.Name),
		ProfileName: optionalString(req.ProfileName),
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("email", req.Email).Msg("email registered concurrently")
			return models.SignupResponse{}, ErrDuplicateAccount
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.SignupResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(user.ID)
	if err != nil {
		return models.SignupResponse{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return models.SignupResponse{User: user, Token: token.SignedString}, nil
}

// Signin authenticates an existing password account.
//
// An unknown email, an account without a password and a wrong password all
// yield the same ErrInvalidCredentials.
func (a *authService) Signin(ctx context.Context, req models.SigninRequest) (models.AccessTokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AccessTokenResponse{}, ErrInvalidCredentials
	}
	req.Email = validators.NormalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", req.Email).Msg("signin for unknown email")
			return models.AccessTokenResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AccessTokenResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, ok := user.Password.Get()
	if !ok || !a.hasher.Verify(req.Password, hash) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.AccessTokenResponse{}, ErrInvalidCredentials
	}

	token, err := a.createToken(user.ID)
	if err != nil {
		return models.AccessTokenResponse{}, err
	}

	return models.AccessTokenResponse{AccessToken: token.SignedString, TokenType: models.TokenTypeBearer}, nil
}

// FederatedRegister upserts the user identified by the Spotify account behind
// externalToken.
//
// A fresh dna is generated on every call. A first registration creates
// {id, name, spotify_id, dna}; later ones update only dna and keep the id. If
// a concurrent first registration wins the insert, the winner's record is
// re-read and updated instead.
func (a *authService) FederatedRegister(ctx context.Context, externalToken string) (models.FederatedRegisterResponse, error) {
	log := logger.FromContext(ctx)

	externalToken = strings.TrimSpace(externalToken)
	if err := a.validator.Validate(ctx, models.FederatedRegisterRequest{SpotifyToken: externalToken}); err != nil {
		return models.FederatedRegisterResponse{}, ErrMissingCredential
	}

	identity, err := a.identityResolver.Resolve(ctx, externalToken)
	if err != nil {
		log.Err(err).Msg("external identity resolution failed")
		return models.FederatedRegisterResponse{}, fmt.Errorf("%w: %w", ErrExternalIdentity, err)
	}

	dna := a.dna.Generate()

	userID, err := a.linkSpotifyIdentity(ctx, identity, dna)
	if err != nil {
		return models.FederatedRegisterResponse{}, err
	}

	token, err := a.createToken(userID)
	if err != nil {
		return models.FederatedRegisterResponse{}, err
	}

	log.Info().Str("user_id", userID).Str("spotify_id", identity.SpotifyID).Msg("spotify account registered")
	return models.FederatedRegisterResponse{UserToken: token.SignedString}, nil
}

func (a *authService) linkSpotifyIdentity(ctx context.Context, identity models.ExternalIdentity, dna string) (string, error) {
	log := logger.FromContext(ctx)

	existing, err := a.userRepository.FindUserBySpotifyID(ctx, identity.SpotifyID)
	switch {
	case err == nil:
		return existing.ID, a.updateDNA(ctx, existing.ID, dna)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("spotify_id", identity.SpotifyID).Msg("user search by spotify id failed")
		return "", fmt.Errorf("user search by spotify id failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		ID:        a.ids.Generate(),
		Name:      optionalString(identity.Name),
		SpotifyID: models.Some(identity.SpotifyID),
		DNA:       models.Some(dna),
	})
	if err == nil {
		return created.ID, nil
	}
	if !errors.Is(err, store.ErrUserAlreadyExists) {
		log.Err(err).Str("spotify_id", identity.SpotifyID).Msg("user creation ended with error")
		return "", fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("spotify_id", identity.SpotifyID).Msg("spotify account registered concurrently, updating winner")
	winner, err := a.userRepository.FindUserBySpotifyID(ctx, identity.SpotifyID)
	if err != nil {
		return "", fmt.Errorf("user search by spotify id failed: %w", err)
	}

	return winner.ID, a.updateDNA(ctx, winner.ID, dna)
}

func (a *authService) updateDNA(ctx context.Context, userID, dna string) error {
	if err := a.userRepository.UpdateUserDNA(ctx, userID, dna); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("dna update failed")
		return fmt.Errorf("dna update failed: %w", err)
	}
	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CurrentUser looks up the user with the given id.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// createToken issues a signed JWT whose subject is userID.
func (a *authService) createToken(userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func optionalString(s string) models.Optional[string] {
	if s == "" {
		return models.None[string]()
	}
	return models.Some(s)
}
