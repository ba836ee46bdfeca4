// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/tunnel-dash/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Bridge delivers sync client events to the bubbletea program. Listener
// calls never block: events are queued and the program drains the queue in
// batches.
type Bridge struct {
	mu     sync.Mutex
	queue  []tea.Msg
	closed bool

	signal chan struct{}
	done   chan struct{}
}

func NewBridge() *Bridge {
	return &Bridge{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (b *Bridge) OnSnapshotUpdated(snapshot models.Snapshot) {
	b.push(snapshotMsg{snapshot: snapshot})
}

func (b *Bridge) OnConnectionStateChanged(isLive bool) {
	b.push(connectionMsg{live: isLive})
}

func (b *Bridge) OnUserNotification(n models.Notification) {
	b.push(notificationMsg{notification: n})
}

func (b *Bridge) OnAuthenticationFailed(err error) {
	b.push(authFailedMsg{err: err})
}

// Close releases a pending wait. Events queued afterwards are dropped.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
}

func (b *Bridge) push(msg tea.Msg) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

func (b *Bridge) drain() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.queue
	b.queue = nil
	return out
}

// wait returns a command that blocks until events are queued and delivers
// them as one eventsMsg. It returns nil once the bridge is closed.
func (b *Bridge) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			if events := b.drain(); len(events) > 0 {
				return eventsMsg(events)
			}
			select {
			case <-b.signal:
			case <-b.done:
				return nil
			}
		}
	}
}
