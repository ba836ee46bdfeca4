// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the sync
// client, the dashboard, and the client runtime.
//
// Keeping them in one place ensures consistent wording across toasts, banners,
// and terminal output.
package app

const (
	// MsgRefreshSucceeded confirms an explicit refresh.
	MsgRefreshSucceeded = "Data refreshed"

	// MsgRefreshFailed reports an explicit refresh that could not reach the
	// backend.
	MsgRefreshFailed = "Could not load data from server"

	// MsgPushConnected is shown when the live channel opens.
	MsgPushConnected = "Connected to live updates"

	// MsgDemoFallback is shown when the backend could not be reached on first
	// load and demonstration data is displayed instead.
	MsgDemoFallback = "Could not load data. Showing demo data."

	// MsgDemoBanner labels demonstration data on screen.
	MsgDemoBanner = "DEMO DATA: not live, backend unreachable"

	// MsgNoTunnels is the empty state of the tunnel list.
	MsgNoTunnels = "No tunnels yet"

	// MsgNoTunnelsHint explains how tunnels appear.
	MsgNoTunnelsHint = "Start a tunnel client to see it here."

	// MsgSessionExpired tells the user to sign in again.
	MsgSessionExpired = "Session expired. Sign in again and restart the dashboard."

	// MsgAuthenticationFailed is printed when the backend rejects the stored
	// credential while the dashboard is running.
	MsgAuthenticationFailed = "The server rejected the credential. Stored session discarded."

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "Copied to clipboard"

	// MsgCopyFailed reports a clipboard failure.
	MsgCopyFailed = "Could not copy to clipboard"

	// MsgNothingToCopy is shown when no tunnel is selected.
	MsgNothingToCopy = "Select a tunnel to copy its address"

	// MsgThemeSaveFailed reports that the theme could not be persisted.
	MsgThemeSaveFailed = "Theme applied but could not be saved"
)
