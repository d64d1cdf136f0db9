package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens (creating if needed) the SQLite database at path
// and applies migrations. SQLite allows a single writer, so the pool is
// limited to one connection.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	return open(ctx, "sqlite3", path, dialectSQLite, 1, log)
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// isUniqueViolation reports whether err is a uniqueness violation reported by
// either SQL backend.
func isUniqueViolation(err error) bool {
	return isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err)
}
