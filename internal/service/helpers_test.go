// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/config"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/mock"
	"github.com/MKhiriev/tunnel-dash/models"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// recordingListener: потокобезопасный шпион для событий SyncClient.
type recordingListener struct {
	mu        sync.Mutex
	snapshots []models.Snapshot
	live      []bool
	notes     []models.Notification
	authErrs  []error
}

func (l *recordingListener) OnSnapshotUpdated(s models.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.snapshots = append(l.snapshots, s)
}

func (l *recordingListener) OnConnectionStateChanged(isLive bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.live = append(l.live, isLive)
}

func (l *recordingListener) OnUserNotification(n models.Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notes = append(l.notes, n)
}

func (l *recordingListener) OnAuthenticationFailed(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.authErrs = append(l.authErrs, err)
}

func (l *recordingListener) Snapshots() []models.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Snapshot(nil), l.snapshots...)
}

func (l *recordingListener) Live() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]bool(nil), l.live...)
}

func (l *recordingListener) Notes() []models.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Notification(nil), l.notes...)
}

func (l *recordingListener) AuthErrs() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]error(nil), l.authErrs...)
}

// fakeAfter заменяет time.AfterFunc: считает вызовы и запускает колбэки вручную.
type fakeAfter struct {
	mu      sync.Mutex
	delays  []time.Duration
	fns     []func()
	stopped int
}

type fakeStopper struct{ f *fakeAfter }

func (s fakeStopper) Stop() bool {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	s.f.stopped++
	return true
}

func (f *fakeAfter) afterFunc(d time.Duration, fn func()) stopper {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays = append(f.delays, d)
	f.fns = append(f.fns, fn)
	return fakeStopper{f: f}
}

func (f *fakeAfter) Scheduled() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fns)
}

func (f *fakeAfter) Fire(i int) {
	f.mu.Lock()
	fn := f.fns[i]
	f.mu.Unlock()
	fn()
}

func testSyncConfig() config.ClientSync {
	return config.ClientSync{
		PollInterval:   time.Hour,
		ReconnectDelay: 5 * time.Second,
		DemoFallback:   true,
		Variant:        config.VariantDesktop,
	}
}

// newTestSyncClient: хелпер: клиент с моками, шпионом и ручным таймером.
func newTestSyncClient(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.ClientSync,
) (
	*syncClient,
	*mock.MockMetricsAdapter,
	*mock.MockPushDialer,
	*recordingListener,
	*fakeAfter,
) {
	t.Helper()
	metrics := mock.NewMockMetricsAdapter(ctrl)
	dialer := mock.NewMockPushDialer(ctrl)
	listener := &recordingListener{}
	after := &fakeAfter{}

	c := NewSyncClient(metrics, dialer, listener, cfg, logger.Nop()).(*syncClient)
	c.now = func() time.Time { return fixedNow }
	c.reconnect.afterFunc = after.afterFunc

	return c, metrics, dialer, listener, after
}

// markRunning переводит клиент в рабочее состояние без запуска фоновых задач.
func markRunning(t *testing.T, c *syncClient) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	c.mu.Lock()
	c.status = statusRunning
	c.runCtx = ctx
	c.cancel = cancel
	c.mu.Unlock()
}

func okResponse(data string) models.APIResponse {
	return models.APIResponse{Success: true, Data: []byte(data)}
}

const sampleMetrics = `{"totalBytesUp":128000000,"totalBytesDown":256000000,"activeTunnels":2,"totalConnections":15}`

const sampleTunnels = `[{"name":"web","status":"active","protocol":"TCP","local_port":8080,"public_port":10001}]`

// gatedListener: шпион, который задерживает первую доставку выбранного
// события до закрытия release.
type gatedListener struct {
	*recordingListener
	gateSnapshots bool

	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedListener(gateSnapshots bool) *gatedListener {
	return &gatedListener{
		recordingListener: &recordingListener{},
		gateSnapshots:     gateSnapshots,
		entered:           make(chan struct{}),
		release:           make(chan struct{}),
	}
}

func (l *gatedListener) hold() {
	first := false
	l.once.Do(func() { first = true })
	if first {
		close(l.entered)
		<-l.release
	}
}

func (l *gatedListener) OnSnapshotUpdated(s models.Snapshot) {
	if l.gateSnapshots {
		l.hold()
	}
	l.recordingListener.OnSnapshotUpdated(s)
}

func (l *gatedListener) OnConnectionStateChanged(isLive bool) {
	if !l.gateSnapshots {
		l.hold()
	}
	l.recordingListener.OnConnectionStateChanged(isLive)
}

func (l *gatedListener) waitEntered(t *testing.T) {
	t.Helper()
	select {
	case <-l.entered:
	case <-time.After(time.Second):
		t.Fatal("listener was never called")
	}
}
