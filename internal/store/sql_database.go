// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/migrations"
)

// DB is the local SQLite handle shared by the preference and session
// repositories.
type DB struct {
	*sql.DB
	dsn    string
	logger *logger.Logger
}

// Migrate brings the schema up to date with the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Str("dsn", db.dsn).Msg("error applying migrations")
		return fmt.Errorf("error migrating %s: %w", db.dsn, err)
	}

	db.logger.Debug().
		Str("func", "DB.Migrate").
		Str("dsn", db.dsn).
		Ints64("applied", applied).
		Msg("schema is up to date")
	return nil
}

// Close releases the connection.
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		db.logger.Err(err).Str("func", "DB.Close").Str("dsn", db.dsn).Msg("error closing database")
		return fmt.Errorf("error closing %s: %w", db.dsn, err)
	}
	return nil
}
