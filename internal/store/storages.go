package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the function releasing the underlying connection.
type Storages struct {
	UserRepository UserRepository

	closeFn func(ctx context.Context) error
}

// Close releases the backend connection. Safe to call on in-memory storages.
func (s *Storages) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// NewStorages opens the backend selected by the scheme of cfg.DB.DSN:
//
//   - mongodb://, mongodb+srv://  MongoDB, database cfg.DB.Name
//   - postgres://, postgresql://  PostgreSQL
//   - sqlite://<path>, file:...   SQLite
//   - memory://                   process memory
//
// SQL backends are migrated before returning; MongoDB gets its unique
// indexes.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN
	log.Info().Str("backend", backendName(dsn)).Msg("creating new storages...")

	switch {
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		client, coll, err := NewConnectMongo(ctx, dsn, cfg.DB.Name, log)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(coll, log),
			closeFn:        client.Disconnect,
		}, nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return newSQLStorages(db, log), nil

	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		db, err := NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return newSQLStorages(db, log), nil

	case strings.HasPrefix(dsn, "memory://"):
		return &Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, backendName(dsn))
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		closeFn: func(context.Context) error {
			return db.Close()
		},
	}
}

// backendName returns the scheme part of dsn so that credentials never reach
// the logs.
func backendName(dsn string) string {
	if i := strings.Index(dsn, ":"); i >= 0 {
		return dsn[:i]
	}
	return ""
}
