// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a ticker-driven implementation, and a
// Workers aggregate that starts and stops several workers as one.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the work in the background and returns immediately. The
// work ends when ctx is cancelled or Stop is called. Stop blocks until the
// background goroutine has exited and is safe to call on an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
