// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dashboard application runtime.
//
// It resolves the stored session, starts the sync client, runs the terminal
// UI, and tears everything down on exit. An authentication failure reported
// while running discards the stored credential.
package client
