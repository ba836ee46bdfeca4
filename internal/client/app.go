// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/tunnel-dash/internal/app"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/service"
	"github.com/MKhiriev/tunnel-dash/internal/tui"
)

var ErrNilDependency = errors.New("client app: nil dependency")

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	tokens   TokenSetter
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, tokens TokenSetter, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.SyncClient == nil || services.SessionService == nil || tokens == nil || ui == nil {
		return nil, ErrNilDependency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{services: services, tokens: tokens, ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	token, err := a.services.SessionService.ResolveToken(ctx)
	if errors.Is(err, service.ErrTokenExpired) {
		return fmt.Errorf("%s: %w", app.MsgSessionExpired, err)
	}
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}
	a.tokens.SetToken(token)

	if err = a.services.SyncClient.Start(ctx); err != nil {
		return fmt.Errorf("start sync client: %w", err)
	}
	defer a.services.SyncClient.Stop()

	a.logger.Info().Str("func", "App.Run").Bool("authenticated", token != "").Msg("dashboard running")

	err = a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		return nil
	case errors.Is(err, service.ErrAuthentication):
		if discardErr := a.services.SessionService.Discard(ctx); discardErr != nil {
			a.logger.Error().Err(discardErr).Str("func", "App.Run").Msg("stored session was not discarded")
		}
		return fmt.Errorf("%s: %w", app.MsgAuthenticationFailed, err)
	default:
		return fmt.Errorf("dashboard: %w", err)
	}
}
