// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/adapter"
	"github.com/MKhiriev/tunnel-dash/internal/mock"
	"github.com/MKhiriev/tunnel-dash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// racingWindow даёт конкурирующей горутине время дойти до точки доставки.
const racingWindow = 50 * time.Millisecond

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

// ── ordered delivery ─────────────────────────────────────────────────────────

func TestSyncClient_FetchCycle_LastDeliveredSnapshotIsComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, metrics, _, _, _ := newTestSyncClient(t, ctrl, testSyncConfig())
	markRunning(t, c)

	listener := newGatedListener(true)
	c.listener = listener

	metrics.EXPECT().FetchMetrics(gomock.Any()).Return(okResponse(sampleMetrics), nil)
	metrics.EXPECT().FetchTunnels(gomock.Any()).Return(okResponse(sampleTunnels), nil)

	done := make(chan struct{})
	var res fetchResult
	go func() {
		defer close(done)
		res = c.fetchCycle(context.Background())
	}()

	// первая половина застряла в доставке, вторая пытается её обогнать
	listener.waitEntered(t)
	time.Sleep(racingWindow)
	close(listener.release)
	waitDone(t, done)

	require.NoError(t, res.err())

	want, ok := c.Snapshot()
	require.True(t, ok)
	assert.Equal(t, int64(2), want.ActiveTunnelCount)
	assert.Len(t, want.Tunnels, 1)

	got := listener.Snapshots()
	require.Len(t, got, 2)
	last := got[len(got)-1]
	assert.Equal(t, want.ActiveTunnelCount, last.ActiveTunnelCount)
	assert.Equal(t, want.Tunnels, last.Tunnels)
}

func TestSyncClient_AuthFailureDuringConnect_LiveEventsStayOrdered(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, dialer, _, _ := newTestSyncClient(t, ctrl, testSyncConfig())
	markRunning(t, c)

	listener := newGatedListener(false)
	c.listener = listener

	conn := mock.NewMockPushConn(ctrl)
	conn.EXPECT().ReadMessage(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}).AnyTimes()
	conn.EXPECT().Close().Return(nil).AnyTimes()
	dialer.EXPECT().Dial(gomock.Any()).Return(conn, nil)

	c.mu.Lock()
	c.mode = models.ModeConnecting
	gen := c.connGen
	ctx := c.runCtx
	c.mu.Unlock()

	pushDone := make(chan struct{})
	go func() {
		defer close(pushDone)
		c.runPush(ctx, gen)
	}()

	// live=true застрял в доставке, отказ авторизации приходит в это время
	listener.waitEntered(t)
	authDone := make(chan struct{})
	go func() {
		defer close(authDone)
		c.failAuth(fmt.Errorf("%w: %w", ErrAuthentication, adapter.ErrUnauthorized))
	}()
	time.Sleep(racingWindow)
	close(listener.release)

	waitDone(t, authDone)
	waitDone(t, pushDone)

	assert.Equal(t, []bool{true, false}, listener.Live())
	assert.Equal(t, models.ModeDisconnected, c.State().Mode)
	assert.Len(t, listener.AuthErrs(), 1)
}

// ── teardown ─────────────────────────────────────────────────────────────────

func TestSyncClient_Stop_ClearsReconnectArmedDuringTeardown(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, _, _ := newTestSyncClient(t, ctrl, testSyncConfig())
	markRunning(t, c)

	listener := newGatedListener(false)
	c.listener = listener

	conn := mock.NewMockPushConn(ctrl)
	conn.EXPECT().Close().Return(nil).AnyTimes()

	c.mu.Lock()
	c.mode = models.ModeConnected
	c.conn = conn
	c.connGen = 4
	c.mu.Unlock()

	// горутина push уже прошла проверку поколения и застряла на live=false
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.onPushClose(4, adapter.ErrPushClosed)
	}()
	listener.waitEntered(t)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		c.Stop()
	}()
	time.Sleep(racingWindow)
	close(listener.release)
	waitDone(t, stopped)

	assert.False(t, c.reconnect.Pending(), "no reconnect timer survives Stop")
	assert.Equal(t, []bool{false}, listener.Live())
}
