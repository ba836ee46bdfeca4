// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/tunnel-dash/models"
)

// SyncClient keeps a dashboard snapshot in step with the backend. It prefers
// the push channel and falls back to periodic polling while the channel is
// down.
type SyncClient interface {
	// Start dials the push channel and, concurrently, fetches one full
	// snapshot. It returns immediately; results reach the [Listener].
	// Returns [ErrAlreadyStarted] or [ErrClientStopped] when the client is
	// not idle.
	Start(ctx context.Context) error

	// Stop cancels the reconnect timer and the poll loop, closes the push
	// channel, and waits for background work to finish. The last snapshot is
	// kept. Safe to call more than once.
	Stop()

	// RequestManualRefresh runs one fetch cycle regardless of the connection
	// mode and always reports the outcome through
	// [Listener.OnUserNotification].
	RequestManualRefresh(ctx context.Context) error

	// OnVisible reconnects and refreshes when the push channel is not
	// connected. It does not block.
	OnVisible(ctx context.Context)

	// State returns a copy of the current connection state.
	State() models.ConnectionState

	// Snapshot returns a copy of the last snapshot, if any.
	Snapshot() (models.Snapshot, bool)
}

// Listener receives the outbound events of a [SyncClient]. Calls arrive from
// background goroutines; implementations must not block.
type Listener interface {
	OnSnapshotUpdated(snapshot models.Snapshot)
	OnConnectionStateChanged(isLive bool)
	OnUserNotification(n models.Notification)
	// OnAuthenticationFailed is called once when the backend rejects the
	// credential. The client is stopped for good afterwards.
	OnAuthenticationFailed(err error)
}

// SessionService owns the bearer credential of the dashboard.
type SessionService interface {
	// ResolveToken returns the credential to use: the configured override if
	// any, else the stored one. An empty token means anonymous access.
	// Returns [ErrTokenExpired] when the credential is a JWT past its expiry.
	ResolveToken(ctx context.Context) (string, error)

	// Discard removes the stored credential.
	Discard(ctx context.Context) error
}

// PreferenceService stores user interface preferences.
type PreferenceService interface {
	// Theme returns the stored theme or [ThemeDark].
	Theme(ctx context.Context) string

	// ToggleTheme flips between [ThemeDark] and [ThemeLight], persists the
	// result, and returns it. The new theme is returned even when saving
	// fails.
	ToggleTheme(ctx context.Context) (string, error)
}
