// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/tunnel-dash/models"
	tea "github.com/charmbracelet/bubbletea"
)

// eventsMsg is a batch of sync client events in arrival order.
type eventsMsg []tea.Msg

type snapshotMsg struct {
	snapshot models.Snapshot
}

type connectionMsg struct {
	live bool
}

type notificationMsg struct {
	notification models.Notification
}

type authFailedMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type themeToggledMsg struct {
	theme string
	err   error
}

type copiedMsg struct {
	err error
}

type toastExpiredMsg struct {
	id int
}

type clockMsg time.Time
