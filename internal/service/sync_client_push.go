// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/tunnel-dash/internal/app"
	"github.com/MKhiriev/tunnel-dash/internal/normalizer"
	"github.com/MKhiriev/tunnel-dash/models"
)

// connect starts one push dial attempt. It does nothing unless the client is
// running and the channel is down.
func (c *syncClient) connect() {
	c.mu.Lock()
	if c.usableLocked() != nil || c.mode != models.ModeDisconnected {
		c.mu.Unlock()
		return
	}
	c.mode = models.ModeConnecting
	c.attempts++
	c.connGen++
	gen := c.connGen
	attempt := c.attempts
	ctx := c.runCtx
	c.wg.Add(1)
	c.mu.Unlock()

	c.logger.Debug().
		Str("func", "syncClient.connect").
		Int("attempt", attempt).
		Msg("dialing push channel")

	go func() {
		defer c.wg.Done()
		c.runPush(ctx, gen)
	}()
}

// runPush owns one push connection from dial to close. gen identifies the
// attempt; results of superseded attempts are discarded.
func (c *syncClient) runPush(ctx context.Context, gen uint64) {
	conn, err := c.dialer.Dial(ctx)
	if err != nil {
		c.onPushClose(gen, mapAdapterError(err))
		return
	}

	c.deliverMu.Lock()
	c.mu.Lock()
	if c.connGen != gen || c.usableLocked() != nil {
		c.mu.Unlock()
		c.deliverMu.Unlock()
		_ = conn.Close()
		return
	}
	c.conn = conn
	c.mode = models.ModeConnected
	c.attempts = 0
	c.mu.Unlock()

	c.listener.OnConnectionStateChanged(true)
	c.deliverMu.Unlock()

	c.logger.Info().
		Str("func", "syncClient.runPush").
		Str("mode", models.ModeConnected.String()).
		Msg("push channel connected")

	c.notify(app.MsgPushConnected, models.SeveritySuccess)

	for {
		raw, err := conn.ReadMessage(ctx)
		if err != nil {
			c.onPushClose(gen, mapAdapterError(err))
			return
		}
		c.onPushMessage(raw)
	}
}

// onPushClose handles a close or error of attempt gen. The last snapshot is
// kept and exactly one reconnect is scheduled however often it is called.
func (c *syncClient) onPushClose(gen uint64, err error) {
	if isAuthError(err) {
		c.failAuth(err)
		return
	}

	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	if c.connGen != gen {
		c.mu.Unlock()
		return
	}
	conn := c.conn
	c.conn = nil
	wasLive := c.mode == models.ModeConnected
	c.mode = models.ModeDisconnected
	running := c.usableLocked() == nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if wasLive {
		c.listener.OnConnectionStateChanged(false)
	}
	if !running {
		return
	}

	c.logger.Warn().Err(err).
		Str("func", "syncClient.onPushClose").
		Str("mode", models.ModeDisconnected.String()).
		Msg("push channel down, polling")

	c.scheduleReconnect()
}

func (c *syncClient) scheduleReconnect() {
	if !c.reconnect.Schedule(c.cfg.ReconnectDelay, c.connect) {
		return
	}
	c.logger.Debug().
		Str("func", "syncClient.scheduleReconnect").
		Dur("delay", c.cfg.ReconnectDelay).
		Msg("reconnect scheduled")
}

// onPushMessage applies one push envelope. Malformed messages and unknown
// types are dropped.
func (c *syncClient) onPushMessage(raw []byte) {
	env, err := normalizer.DecodeEnvelope(raw)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "syncClient.onPushMessage").
			Msg("malformed push message dropped")
		return
	}

	switch env.Type {
	case models.PushTypeMetrics:
		obj, err := normalizer.DecodeObject(env.Data)
		if err != nil || obj == nil {
			c.logger.Warn().Err(err).
				Str("func", "syncClient.onPushMessage").
				Str("type", env.Type).
				Msg("metrics payload is not an object")
			return
		}
		c.applyMetrics(normalizer.NormalizeMetrics(obj), models.SourcePush)

	case models.PushTypeTunnelUpdate:
		if isNullPayload(env.Data) {
			return
		}
		v, err := normalizer.DecodeAny(env.Data)
		if err != nil {
			c.logger.Warn().Err(err).
				Str("func", "syncClient.onPushMessage").
				Str("type", env.Type).
				Msg("malformed tunnel payload dropped")
			return
		}
		c.applyTunnels(normalizer.NormalizeTunnels(v), models.SourcePush)

	default:
		c.logger.Debug().
			Str("func", "syncClient.onPushMessage").
			Str("type", env.Type).
			Msg("unknown push message type ignored")
	}
}

func isNullPayload(data []byte) bool {
	return len(data) == 0 || string(data) == "null"
}
