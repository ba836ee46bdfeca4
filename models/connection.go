// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionMode is the push channel state that decides which data source
// is active. Exactly one mode holds at any time.
type ConnectionMode int

const (
	// ModeDisconnected means the push channel is down and polling is the
	// active data source (PUSH_FAILED_POLLING).
	ModeDisconnected ConnectionMode = iota
	// ModeConnecting means a push connection attempt is in flight
	// (PUSH_CONNECTING). Polling stays active until it succeeds.
	ModeConnecting
	// ModeConnected means the push channel is open (PUSH_CONNECTED) and
	// polling is suspended.
	ModeConnected
)

func (m ConnectionMode) String() string {
	switch m {
	case ModeConnecting:
		return "connecting"
	case ModeConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// IsLive reports whether the push channel is currently open.
func (m ConnectionMode) IsLive() bool {
	return m == ModeConnected
}

// ConnectionState is a read-only view of the synchronisation state.
type ConnectionState struct {
	Mode ConnectionMode
	// LastSnapshot is nil until the first snapshot was published.
	LastSnapshot *Snapshot
	// ReconnectAttempts counts push dial attempts since the last successful
	// connection.
	ReconnectAttempts int
}
