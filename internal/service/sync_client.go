// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/adapter"
	"github.com/MKhiriev/tunnel-dash/internal/app"
	"github.com/MKhiriev/tunnel-dash/internal/config"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/workers"
	"github.com/MKhiriev/tunnel-dash/models"
)

type clientStatus int

const (
	statusIdle clientStatus = iota
	statusRunning
	statusStopped
)

type syncClient struct {
	metrics  adapter.MetricsAdapter
	dialer   adapter.PushDialer
	listener Listener
	cfg      config.ClientSync
	logger   *logger.Logger
	now      func() time.Time

	reconnect *reconnectTimer
	poller    *workers.Workers

	// deliverMu is held from a state change until its listener event has
	// been delivered, so listeners see events in the order the changes
	// were made. Lock order: deliverMu, then mu.
	deliverMu sync.Mutex

	mu          sync.Mutex
	status      clientStatus
	authErr     error
	mode        models.ConnectionMode
	attempts    int
	snapshot    models.Snapshot
	hasSnapshot bool
	conn        adapter.PushConn
	connGen     uint64
	runCtx      context.Context
	cancel      context.CancelFunc

	wg sync.WaitGroup
}

// NewSyncClient creates an idle SyncClient. A nil listener discards events.
func NewSyncClient(
	metrics adapter.MetricsAdapter,
	dialer adapter.PushDialer,
	listener Listener,
	cfg config.ClientSync,
	log *logger.Logger,
) SyncClient {
	if listener == nil {
		listener = noopListener{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = config.DefaultReconnectDelay
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = config.DefaultPollInterval
	}

	c := &syncClient{
		metrics:   metrics,
		dialer:    dialer,
		listener:  listener,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
		reconnect: newReconnectTimer(),
		snapshot:  models.NewSnapshot(),
		mode:      models.ModeDisconnected,
	}
	c.poller = workers.NewWorkers(workers.NewTickerWorker(cfg.PollInterval, c.pollTick))

	return c
}

func (c *syncClient) Start(ctx context.Context) error {
	c.mu.Lock()
	switch c.status {
	case statusRunning:
		c.mu.Unlock()
		return ErrAlreadyStarted
	case statusStopped:
		c.mu.Unlock()
		return ErrClientStopped
	}
	c.runCtx, c.cancel = context.WithCancel(ctx)
	c.status = statusRunning
	runCtx := c.runCtx
	c.mu.Unlock()

	c.logger.Info().
		Str("func", "syncClient.Start").
		Dur("poll_interval", c.cfg.PollInterval).
		Dur("reconnect_delay", c.cfg.ReconnectDelay).
		Msg("sync client started")

	c.poller.Start(runCtx)
	c.connect()
	c.spawn(c.initialLoad)

	return nil
}

func (c *syncClient) Stop() {
	c.deliverMu.Lock()
	c.mu.Lock()
	if c.status == statusStopped {
		c.mu.Unlock()
		c.deliverMu.Unlock()
		return
	}
	wasRunning := c.status == statusRunning
	c.status = statusStopped
	cancel := c.cancel
	conn := c.conn
	c.conn = nil
	wasLive := c.mode == models.ModeConnected
	c.mode = models.ModeDisconnected
	c.connGen++
	c.mu.Unlock()
	c.deliverMu.Unlock()

	c.reconnect.Cancel()
	if !wasRunning {
		return
	}

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close()
	}
	c.poller.Stop()
	c.wg.Wait()
	// a push goroutine may have armed the timer while it was winding down
	c.reconnect.Cancel()

	if wasLive {
		c.listener.OnConnectionStateChanged(false)
	}

	c.logger.Info().Str("func", "syncClient.Stop").Msg("sync client stopped")
}

func (c *syncClient) RequestManualRefresh(ctx context.Context) error {
	if err := c.usable(); err != nil {
		return err
	}

	res := c.fetchCycle(ctx)
	if err := res.authErr(); err != nil {
		c.failAuth(err)
		return err
	}
	if err := res.err(); err != nil {
		c.logger.Warn().Err(err).
			Str("func", "syncClient.RequestManualRefresh").
			Msg("manual refresh failed")
		c.notify(app.MsgRefreshFailed, models.SeverityError)
		return err
	}

	c.notify(app.MsgRefreshSucceeded, models.SeveritySuccess)
	return nil
}

func (c *syncClient) OnVisible(ctx context.Context) {
	if ctx.Err() != nil || c.usable() != nil {
		return
	}

	c.mu.Lock()
	live := c.mode == models.ModeConnected
	c.mu.Unlock()
	if live {
		return
	}

	c.logger.Debug().Str("func", "syncClient.OnVisible").Msg("visible while not live, reconnecting")

	c.reconnect.Cancel()
	c.connect()
	c.spawn(c.backgroundRefresh)
}

func (c *syncClient) State() models.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := models.ConnectionState{
		Mode:              c.mode,
		ReconnectAttempts: c.attempts,
	}
	if c.hasSnapshot {
		s := c.snapshot.Clone()
		state.LastSnapshot = &s
	}
	return state
}

func (c *syncClient) Snapshot() (models.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasSnapshot {
		return models.NewSnapshot(), false
	}
	return c.snapshot.Clone(), true
}

// usable reports why the client cannot accept work, if it cannot.
func (c *syncClient) usable() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usableLocked()
}

func (c *syncClient) usableLocked() error {
	if c.authErr != nil {
		return c.authErr
	}
	switch c.status {
	case statusIdle:
		return ErrNotStarted
	case statusStopped:
		return ErrClientStopped
	}
	return nil
}

// spawn runs fn on a tracked goroutine bound to the run context. It does
// nothing once the client is stopped or failed.
func (c *syncClient) spawn(fn func(ctx context.Context)) {
	c.mu.Lock()
	if c.usableLocked() != nil {
		c.mu.Unlock()
		return
	}
	ctx := c.runCtx
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		fn(ctx)
	}()
}

// failAuth makes the client terminal. It must not wait for background work:
// it is called from the poll tick and the push goroutine.
func (c *syncClient) failAuth(err error) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	if c.authErr != nil || c.status != statusRunning {
		c.mu.Unlock()
		return
	}
	c.authErr = err
	cancel := c.cancel
	conn := c.conn
	c.conn = nil
	wasLive := c.mode == models.ModeConnected
	c.mode = models.ModeDisconnected
	c.connGen++
	c.mu.Unlock()

	c.reconnect.Cancel()
	cancel()
	if conn != nil {
		_ = conn.Close()
	}

	c.logger.Error().Err(err).Str("func", "syncClient.failAuth").Msg("backend rejected the credential")

	if wasLive {
		c.listener.OnConnectionStateChanged(false)
	}
	c.listener.OnAuthenticationFailed(err)
}

func (c *syncClient) notify(message string, severity models.Severity) {
	c.listener.OnUserNotification(models.Notification{
		Message:  message,
		Severity: severity,
		At:       c.now(),
	})
}

type noopListener struct{}

func (noopListener) OnSnapshotUpdated(models.Snapshot)      {}
func (noopListener) OnConnectionStateChanged(bool)          {}
func (noopListener) OnUserNotification(models.Notification) {}
func (noopListener) OnAuthenticationFailed(error)           {}
