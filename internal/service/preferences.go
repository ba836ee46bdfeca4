// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/store"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	themeKey = "theme"
)

type preferenceService struct {
	prefs  store.PreferenceRepository
	logger *logger.Logger
}

func NewPreferenceService(prefs store.PreferenceRepository, log *logger.Logger) PreferenceService {
	return &preferenceService{prefs: prefs, logger: log}
}

func (s *preferenceService) Theme(ctx context.Context) string {
	theme, err := s.prefs.Get(ctx, themeKey)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "preferenceService.Theme").Msg("theme not stored, using default")
		return ThemeDark
	}
	if theme != ThemeLight {
		return ThemeDark
	}
	return theme
}

func (s *preferenceService) ToggleTheme(ctx context.Context) (string, error) {
	next := ThemeLight
	if s.Theme(ctx) == ThemeLight {
		next = ThemeDark
	}

	if err := s.prefs.Set(ctx, themeKey, next); err != nil {
		return next, fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}
