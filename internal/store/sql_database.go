// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/migrations"
)

// SQL dialect names understood by goose.
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB together with the statement builder matching its
// placeholder style.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == dialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// open establishes and pings a connection pool sized by maxOpen, then
// applies migrations.
func open(ctx context.Context, driver, dsn, dialect string, maxOpen int, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxOpen)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		return nil, errors.Join(fmt.Errorf("error connecting database: %w", err), conn.Close())
	}
	log.Info().Str("driver", driver).Msg("connected to database successfully")

	db := newDB(conn, dialect, log)
	if err = db.Migrate(); err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	return db, nil
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
