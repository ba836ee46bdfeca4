// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used when a ticker worker is created with a
// non-positive interval.
const DefaultInterval = 5 * time.Second

type tickerWorker struct {
	interval time.Duration
	tick     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTickerWorker creates a Worker that calls tick every interval. The first
// call happens one interval after Start. Ticks never overlap: a slow tick
// delays the next one.
func NewTickerWorker(interval time.Duration, tick func(ctx context.Context)) Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &tickerWorker{interval: interval, tick: tick}
}

// Start implements Worker. It stops any previously running loop first.
func (w *tickerWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.tick(jobCtx)
			}
		}
	}()
}

// Stop implements Worker.
func (w *tickerWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
