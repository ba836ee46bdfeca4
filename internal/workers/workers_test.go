// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its events to a shared log.
type recordingWorker struct {
	id  int
	log *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.log = append(*r.log, "start", string(rune('0'+r.id)))
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, "stop", string(rune('0'+r.id)))
}

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: 1, log: &log},
		&recordingWorker{id: 2, log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()
	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})

	var zero Workers
	assert.NotPanics(t, zero.Stop)
}

// ── ticker ───────────────────────────────────────────────────────────────────

func TestTickerWorker_Ticks(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker(10*time.Millisecond, func(context.Context) { calls.Add(1) })

	w.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestTickerWorker_StopHaltsTicks(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker(10*time.Millisecond, func(context.Context) { calls.Add(1) })

	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	afterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, calls.Load())
}

func TestTickerWorker_ParentCancelHaltsTicks(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker(10*time.Millisecond, func(context.Context) { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()
	time.Sleep(20 * time.Millisecond)
	afterCancel := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, afterCancel, calls.Load())
	w.Stop()
}

func TestTickerWorker_DefaultInterval(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker(0, func(context.Context) { calls.Add(1) })
	assert.Equal(t, DefaultInterval, w.(*tickerWorker).interval)

	w.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	w.Stop()

	assert.Zero(t, calls.Load())
}

func TestTickerWorker_StopIdempotent(t *testing.T) {
	w := NewTickerWorker(time.Second, func(context.Context) {})
	assert.NotPanics(t, func() {
		w.Stop()
		w.Start(context.Background())
		w.Stop()
		w.Stop()
	})
}

func TestTickerWorker_RestartReplacesLoop(t *testing.T) {
	var calls atomic.Int64
	w := NewTickerWorker(10*time.Millisecond, func(context.Context) { calls.Add(1) })

	w.Start(context.Background())
	w.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	w.Stop()

	// a single loop ticks about three times in 35ms; two loops would double it
	assert.LessOrEqual(t, calls.Load(), int64(4))
}
