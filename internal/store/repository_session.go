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

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger, now: time.Now}
}

func (s *sessionRepository) SaveToken(ctx context.Context, token string) error {
	query, args, err := saveTokenQuery(token, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.SaveToken").Msg("failed to save session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sessionRepository) LoadToken(ctx context.Context) (string, error) {
	query, args, err := loadTokenQuery()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.LoadToken").Msg("failed to load session token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sessionRepository) ClearToken(ctx context.Context) error {
	query, args, err := clearTokenQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.ClearToken").Msg("failed to clear session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
