// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/tunnel-dash/internal/adapter"
	"github.com/MKhiriev/tunnel-dash/internal/app"
	"github.com/MKhiriev/tunnel-dash/internal/normalizer"
	"github.com/MKhiriev/tunnel-dash/internal/utils"
	"github.com/MKhiriev/tunnel-dash/models"
)

type fetchResult struct {
	metricsErr error
	tunnelsErr error
}

func (r fetchResult) err() error {
	return errors.Join(r.metricsErr, r.tunnelsErr)
}

func (r fetchResult) authErr() error {
	for _, err := range []error{r.metricsErr, r.tunnelsErr} {
		if isAuthError(err) {
			return err
		}
	}
	return nil
}

func (r fetchResult) bothFailed() bool {
	return r.metricsErr != nil && r.tunnelsErr != nil
}

// fetchCycle requests metrics and tunnels concurrently and applies each
// result as it arrives. Both requests always run to completion.
func (c *syncClient) fetchCycle(ctx context.Context) fetchResult {
	var (
		g   errgroup.Group
		res fetchResult
	)

	g.Go(func() error {
		resp, err := c.metrics.FetchMetrics(ctx)
		if err != nil {
			res.metricsErr = fmt.Errorf("fetch metrics: %w", mapAdapterError(err))
			return nil
		}
		c.applyMetricsResponse(resp)
		return nil
	})

	g.Go(func() error {
		resp, err := c.metrics.FetchTunnels(ctx)
		if err != nil {
			res.tunnelsErr = fmt.Errorf("fetch tunnels: %w", mapAdapterError(err))
			return nil
		}
		c.applyTunnelsResponse(resp)
		return nil
	})

	_ = g.Wait()
	return res
}

// initialLoad is the first fetch cycle after Start. When it fails entirely
// and nothing live has arrived yet, demonstration data is shown.
func (c *syncClient) initialLoad(ctx context.Context) {
	res := c.fetchCycle(ctx)
	if err := res.authErr(); err != nil {
		c.failAuth(err)
		return
	}
	if err := res.err(); err != nil {
		c.logger.Warn().Err(err).
			Str("func", "syncClient.initialLoad").
			Msg("initial load failed")
	}
	if res.bothFailed() && ctx.Err() == nil {
		c.applyDemo()
	}
}

// pollTick runs one silent fetch cycle unless the push channel is connected.
func (c *syncClient) pollTick(ctx context.Context) {
	c.mu.Lock()
	skip := c.mode == models.ModeConnected || c.usableLocked() != nil
	c.mu.Unlock()
	if skip {
		return
	}

	c.backgroundRefresh(ctx)
}

func (c *syncClient) backgroundRefresh(ctx context.Context) {
	res := c.fetchCycle(ctx)
	if err := res.authErr(); err != nil {
		c.failAuth(err)
		return
	}
	if err := res.err(); err != nil {
		ev := c.logger.Warn()
		if adapter.IsTransient(err) {
			ev = c.logger.Debug()
		}
		ev.Err(err).
			Str("func", "syncClient.backgroundRefresh").
			Msg("background refresh failed")
	}
}

// applyMetricsResponse updates the counters. A response without success or
// without an object payload leaves the snapshot untouched.
func (c *syncClient) applyMetricsResponse(resp models.APIResponse) {
	if !resp.HasData() {
		c.logger.Debug().
			Str("func", "syncClient.applyMetricsResponse").
			Bool("success", resp.Success).
			Msg("metrics response without data")
		return
	}

	obj, err := normalizer.DecodeObject(resp.Data)
	if err != nil || obj == nil {
		c.logger.Warn().Err(err).
			Str("func", "syncClient.applyMetricsResponse").
			Msg("metrics payload is not an object")
		return
	}

	c.applyMetrics(normalizer.NormalizeMetrics(obj), models.SourcePoll)
}

// applyTunnelsResponse replaces the tunnel list. A response without success
// or data means there are no tunnels.
func (c *syncClient) applyTunnelsResponse(resp models.APIResponse) {
	if !resp.HasData() {
		c.applyTunnels([]models.TunnelView{}, models.SourcePoll)
		return
	}

	v, err := normalizer.DecodeAny(resp.Data)
	if err != nil {
		c.logger.Warn().Err(fmt.Errorf("%w: %w", adapter.ErrMalformedResponse, err)).
			Str("func", "syncClient.applyTunnelsResponse").
			Msg("tunnel payload dropped")
		return
	}

	c.applyTunnels(normalizer.NormalizeTunnels(v), models.SourcePoll)
}

func (c *syncClient) applyMetrics(m normalizer.Metrics, source models.SnapshotSource) {
	c.publish(source, func(s *models.Snapshot) {
		s.ActiveTunnelCount = m.ActiveTunnelCount
		s.TotalConnectionCount = m.TotalConnectionCount
		s.TotalBytesUp = m.TotalBytesUp
		s.TotalBytesDown = m.TotalBytesDown
		s.Traffic = appendTraffic(s.Traffic, models.TrafficPoint{
			At:     c.now(),
			UpMB:   utils.BytesToMB(m.TotalBytesUp),
			DownMB: utils.BytesToMB(m.TotalBytesDown),
		})
	})
}

func (c *syncClient) applyTunnels(tunnels []models.TunnelView, source models.SnapshotSource) {
	if tunnels == nil {
		tunnels = []models.TunnelView{}
	}
	c.publish(source, func(s *models.Snapshot) {
		s.Tunnels = tunnels
	})
}

// publish builds the next snapshot from a copy of the current one and swaps
// it in whole. Demo data is never carried into a live snapshot.
func (c *syncClient) publish(source models.SnapshotSource, update func(s *models.Snapshot)) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	if c.usableLocked() != nil {
		c.mu.Unlock()
		return
	}

	next := models.NewSnapshot()
	if c.hasSnapshot && !c.snapshot.IsDemo() {
		next = c.snapshot.Clone()
	}
	update(&next)
	next.Source = source
	next.UpdatedAt = c.now()

	c.snapshot = next
	c.hasSnapshot = true
	out := next.Clone()
	c.mu.Unlock()

	c.listener.OnSnapshotUpdated(out)
}

// applyDemo shows demonstration data unless it is disabled or live data
// already arrived.
func (c *syncClient) applyDemo() {
	if !c.cfg.DemoFallback {
		return
	}

	c.deliverMu.Lock()
	c.mu.Lock()
	if c.usableLocked() != nil || (c.hasSnapshot && !c.snapshot.IsDemo()) {
		c.mu.Unlock()
		c.deliverMu.Unlock()
		return
	}
	c.snapshot = demoSnapshot(c.now())
	c.hasSnapshot = true
	out := c.snapshot.Clone()
	c.mu.Unlock()

	c.listener.OnSnapshotUpdated(out)
	c.deliverMu.Unlock()

	c.logger.Warn().Str("func", "syncClient.applyDemo").Msg("backend unreachable, showing demo data")
	c.notify(app.MsgDemoFallback, models.SeverityWarning)
}

func appendTraffic(history []models.TrafficPoint, p models.TrafficPoint) []models.TrafficPoint {
	history = append(history, p)
	if over := len(history) - models.TrafficHistoryLimit; over > 0 {
		history = history[over:]
	}
	return history
}
