// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

type stopper interface {
	Stop() bool
}

// reconnectTimer is a single-slot timer: at most one callback is pending at
// a time.
type reconnectTimer struct {
	afterFunc func(d time.Duration, f func()) stopper

	mu      sync.Mutex
	pending stopper
	gen     uint64
}

func newReconnectTimer() *reconnectTimer {
	return &reconnectTimer{
		afterFunc: func(d time.Duration, f func()) stopper { return time.AfterFunc(d, f) },
	}
}

// Schedule arms the timer to run fn after d. It returns false and does
// nothing while a callback is already pending.
func (t *reconnectTimer) Schedule(d time.Duration, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		return false
	}

	t.gen++
	gen := t.gen
	t.pending = t.afterFunc(d, func() {
		t.mu.Lock()
		if t.gen != gen || t.pending == nil {
			t.mu.Unlock()
			return
		}
		t.pending = nil
		t.mu.Unlock()

		fn()
	})
	return true
}

// Cancel disarms a pending callback.
func (t *reconnectTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.gen++
}

// Pending reports whether a callback is armed.
func (t *reconnectTimer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}
