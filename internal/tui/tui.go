// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the dashboard in the terminal with bubbletea.
//
// The sync client reports to a [Bridge], which feeds its events into the
// program. Focus reporting is enabled so that a terminal regaining focus
// triggers an immediate reconnect-and-refresh when the live channel is down.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/tunnel-dash/internal/config"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/service"
	"github.com/MKhiriev/tunnel-dash/internal/utils"
	"github.com/MKhiriev/tunnel-dash/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the dashboard")

type TUI struct {
	sync      service.SyncClient
	prefs     service.PreferenceService
	bridge    *Bridge
	precision utils.Precision
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	bridge *Bridge,
	cfg config.ClientSync,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *TUI {
	return &TUI{
		sync:      services.SyncClient,
		prefs:     services.PreferenceService,
		bridge:    bridge,
		precision: utils.ParsePrecision(cfg.Variant),
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run shows the dashboard until the user quits or the backend rejects the
// credential. It returns [ErrUserQuit] on a normal exit and the
// authentication error otherwise.
func (t *TUI) Run(ctx context.Context) error {
	theme := t.prefs.Theme(ctx)
	model := newDashboardModel(ctx, t.sync, t.prefs, t.bridge, theme, t.precision, t.buildInfo)

	t.logger.Debug().Str("func", "TUI.Run").Str("theme", theme).Msg("starting dashboard")

	finalModel, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	).Run()
	t.bridge.Close()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.authErr != nil {
		return result.authErr
	}
	return ErrUserQuit
}
