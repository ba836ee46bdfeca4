// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/logger"
)

type preferenceRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{db: db, logger: logger, now: time.Now}
}

func (p *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := getPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrPreferenceNotFound, key)
	}
	if err != nil {
		p.logger.Err(err).
			Str("func", "preferenceRepository.Get").
			Str("key", key).
			Msg("failed to query preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (p *preferenceRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := setPreferenceQuery(key, value, p.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).
			Str("func", "preferenceRepository.Set").
			Str("key", key).
			Msg("failed to upsert preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
