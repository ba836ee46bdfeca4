// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/tunnel-dash/internal/config"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/utils"
	"github.com/gorilla/websocket"
)

// MaxPushMessageSize caps a single push message.
const MaxPushMessageSize = 1 << 20

type wsPushDialer struct {
	url    string
	dialer *websocket.Dialer
	tokens TokenProvider
	ids    *utils.RequestIDs

	logger *logger.Logger
}

// NewWebSocketPushDialer constructs the gorilla/websocket implementation of
// [PushDialer]. The push URL is derived from cfg.HTTPAddress (http→ws,
// https→wss) and cfg.PushPath. tokens supplies the bearer credential sent
// with every handshake; it may be nil.
func NewWebSocketPushDialer(cfg config.ClientAdapter, tokens TokenProvider, logger *logger.Logger) (PushDialer, error) {
	pushURL, err := pushURL(cfg.HTTPAddress, cfg.PushPath)
	if err != nil {
		return nil, fmt.Errorf("invalid push address: %w", err)
	}

	dialer := *websocket.DefaultDialer
	if cfg.RequestTimeout > 0 {
		dialer.HandshakeTimeout = cfg.RequestTimeout
	}

	return &wsPushDialer{
		url:    pushURL,
		dialer: &dialer,
		tokens: tokens,
		ids:    utils.NewRequestIDs(),
		logger: logger,
	}, nil
}

func pushURL(address, path string) (string, error) {
	base, err := normalizeBaseURL(address)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	return u.String(), nil
}

// Dial implements [PushDialer].
func (d *wsPushDialer) Dial(ctx context.Context) (PushConn, error) {
	header := http.Header{}
	requestID := d.ids.Stamp(header)
	if d.tokens != nil {
		if token := d.tokens.Token(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	conn, resp, err := d.dialer.DialContext(ctx, d.url, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			if errors.Is(err, websocket.ErrBadHandshake) {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
				return nil, fmt.Errorf("push handshake %s: %w", requestID, mapStatus(resp.StatusCode, string(body)))
			}
		}
		return nil, fmt.Errorf("push dial: %w", err)
	}

	conn.SetReadLimit(MaxPushMessageSize)

	d.logger.Debug().
		Str("func", "wsPushDialer.Dial").
		Str("url", d.url).
		Str("request_id", requestID).
		Msg("push channel opened")

	return &wsPushConn{conn: conn}, nil
}

type wsPushConn struct {
	conn      *websocket.Conn
	closeOnce sync.Once
	closeErr  error
}

// ReadMessage implements [PushConn]. Cancelling ctx closes the connection.
func (c *wsPushConn) ReadMessage(ctx context.Context) ([]byte, error) {
	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	_, payload, err := c.conn.ReadMessage()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrPushClosed, err)
	}
	return payload, nil
}

// Close implements [PushConn].
func (c *wsPushConn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
