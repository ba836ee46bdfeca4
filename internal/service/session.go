// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/store"
	"github.com/MKhiriev/tunnel-dash/internal/utils"
)

type sessionService struct {
	sessions store.SessionRepository
	override string
	logger   *logger.Logger
	now      func() time.Time
}

// NewSessionService creates a SessionService. A non-empty override (the
// token from configuration) replaces the stored credential. It may be given
// as a full "Bearer x" header value.
func NewSessionService(sessions store.SessionRepository, override string, log *logger.Logger) SessionService {
	if token, err := utils.ParseBearerToken(override); err == nil {
		override = token
	}
	return &sessionService{
		sessions: sessions,
		override: override,
		logger:   log,
		now:      time.Now,
	}
}

func (s *sessionService) ResolveToken(ctx context.Context) (string, error) {
	token := s.override
	if token != "" {
		if err := s.sessions.SaveToken(ctx, token); err != nil {
			s.logger.Warn().Err(err).Str("func", "sessionService.ResolveToken").Msg("configured token was not stored")
		}
	} else {
		stored, err := s.sessions.LoadToken(ctx)
		switch {
		case errors.Is(err, store.ErrSessionNotFound):
			s.logger.Debug().Str("func", "sessionService.ResolveToken").Msg("no stored session, anonymous access")
			return "", nil
		case err != nil:
			return "", fmt.Errorf("load stored session: %w", err)
		}
		token = stored
	}

	if err := s.checkExpiry(token); err != nil {
		return "", err
	}
	return token, nil
}

// checkExpiry rejects JWTs past their expiry. Opaque tokens pass.
func (s *sessionService) checkExpiry(token string) error {
	info, err := utils.InspectToken(token)
	if errors.Is(err, utils.ErrNotJWT) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspect token: %w", err)
	}

	if info.Expired(s.now()) {
		s.logger.Info().
			Str("func", "sessionService.checkExpiry").
			Str("subject", info.Subject).
			Msg("stored token is expired")
		return ErrTokenExpired
	}
	return nil
}

func (s *sessionService) Discard(ctx context.Context) error {
	if err := s.sessions.ClearToken(ctx); err != nil {
		return fmt.Errorf("discard session: %w", err)
	}
	return nil
}
