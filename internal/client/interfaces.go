// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by the App. Run blocks until the
// user quits ([tui.ErrUserQuit]) or the session ends with an error.
type UI interface {
	Run(ctx context.Context) error
}

// TokenSetter receives the resolved bearer credential.
type TokenSetter interface {
	SetToken(token string)
}
