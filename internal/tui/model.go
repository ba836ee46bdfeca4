// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/app"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/service"
	"github.com/MKhiriev/tunnel-dash/internal/utils"
	"github.com/MKhiriev/tunnel-dash/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastDuration = 2800 * time.Millisecond
	maxToasts     = 3
	clockInterval = time.Second
)

type toast struct {
	id           int
	notification models.Notification
}

// dashboardModel renders the sync client's snapshot and forwards user
// actions to it.
type dashboardModel struct {
	ctx       context.Context
	sync      service.SyncClient
	prefs     service.PreferenceService
	bridge    *Bridge
	precision utils.Precision
	buildInfo models.AppBuildInfo
	now       func() time.Time
	copyText  func(string) error

	snapshot   models.Snapshot
	hasData    bool
	live       bool
	refreshing bool
	selected   int
	clock      time.Time

	theme  string
	styles styles
	help   help.Model
	width  int

	toasts    []toast
	nextToast int

	showBuildInfo bool
	authErr       error
	quitByUser    bool
}

func newDashboardModel(
	ctx context.Context,
	sync service.SyncClient,
	prefs service.PreferenceService,
	bridge *Bridge,
	theme string,
	precision utils.Precision,
	buildInfo models.AppBuildInfo,
) dashboardModel {
	m := dashboardModel{
		ctx:       ctx,
		sync:      sync,
		prefs:     prefs,
		bridge:    bridge,
		precision: precision,
		buildInfo: buildInfo,
		now:       time.Now,
		copyText:  clipboard.WriteAll,
		snapshot:  models.NewSnapshot(),
		theme:     theme,
		styles:    newStyles(theme),
		help:      help.New(),
	}
	m.clock = m.now()

	if s, ok := sync.Snapshot(); ok {
		m.snapshot = s
		m.hasData = true
	}
	m.live = sync.State().Mode.IsLive()

	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.bridge.wait(), m.tickClock())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsMsg:
		var cmds []tea.Cmd
		for _, ev := range msg {
			var cmd tea.Cmd
			m, cmd = m.applyEvent(ev)
			cmds = append(cmds, cmd)
			if m.authErr != nil {
				return m, tea.Quit
			}
		}
		cmds = append(cmds, m.bridge.wait())
		return m, tea.Batch(cmds...)

	case refreshDoneMsg:
		m.refreshing = false
		return m, nil

	case themeToggledMsg:
		m.theme = msg.theme
		m.styles = newStyles(msg.theme)
		if msg.err != nil {
			return m.addToast(models.Notification{Message: app.MsgThemeSaveFailed, Severity: models.SeverityWarning, At: m.now()})
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.addToast(models.Notification{Message: app.MsgCopyFailed, Severity: models.SeverityError, At: m.now()})
		}
		return m.addToast(models.Notification{Message: app.MsgCopied, Severity: models.SeveritySuccess, At: m.now()})

	case toastExpiredMsg:
		m.toasts = removeToast(m.toasts, msg.id)
		return m, nil

	case clockMsg:
		m.clock = time.Time(msg)
		return m, m.tickClock()

	case tea.FocusMsg:
		return m, m.cmdVisible()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) applyEvent(ev tea.Msg) (dashboardModel, tea.Cmd) {
	switch ev := ev.(type) {
	case snapshotMsg:
		m.snapshot = ev.snapshot
		m.hasData = true
		m.clampSelection()
	case connectionMsg:
		m.live = ev.live
	case notificationMsg:
		model, cmd := m.addToast(ev.notification)
		return model.(dashboardModel), cmd
	case authFailedMsg:
		m.authErr = ev.err
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, keys.down):
		if m.selected < len(m.snapshot.Tunnels)-1 {
			m.selected++
		}
	case key.Matches(msg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(msg, keys.copy):
		t, ok := m.selectedTunnel()
		if !ok {
			return m.addToast(models.Notification{Message: app.MsgNothingToCopy, Severity: models.SeverityInfo, At: m.now()})
		}
		return m, m.cmdCopy(t.PublicEndpoint.String())
	}

	return m, nil
}

func (m dashboardModel) addToast(n models.Notification) (tea.Model, tea.Cmd) {
	m.nextToast++
	id := m.nextToast
	m.toasts = append(m.toasts, toast{id: id, notification: n})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}

	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func removeToast(toasts []toast, id int) []toast {
	out := toasts[:0:0]
	for _, t := range toasts {
		if t.id != id {
			out = append(out, t)
		}
	}
	return out
}

func (m *dashboardModel) clampSelection() {
	if m.selected >= len(m.snapshot.Tunnels) {
		m.selected = len(m.snapshot.Tunnels) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m dashboardModel) selectedTunnel() (models.TunnelView, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Tunnels) {
		return models.TunnelView{}, false
	}
	return m.snapshot.Tunnels[m.selected], true
}

func (m dashboardModel) tickClock() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (m dashboardModel) cmdRefresh() tea.Cmd {
	ctx, sc := m.ctx, m.sync
	return func() tea.Msg {
		err := sc.RequestManualRefresh(ctx)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("func", "dashboardModel.cmdRefresh").Msg("manual refresh failed")
		}
		return refreshDoneMsg{err: err}
	}
}

func (m dashboardModel) cmdVisible() tea.Cmd {
	ctx, sc := m.ctx, m.sync
	return func() tea.Msg {
		sc.OnVisible(ctx)
		return nil
	}
}

func (m dashboardModel) cmdToggleTheme() tea.Cmd {
	ctx, prefs := m.ctx, m.prefs
	return func() tea.Msg {
		theme, err := prefs.ToggleTheme(ctx)
		return themeToggledMsg{theme: theme, err: err}
	}
}

func (m dashboardModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}
