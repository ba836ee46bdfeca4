// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the dashboard and its
// backend.
//
// [MetricsAdapter] fetches snapshots over the request/response endpoints
// ([NewHTTPMetricsAdapter], built on resty). [PushDialer] opens the push
// channel ([NewWebSocketPushDialer], built on gorilla/websocket).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/tunnel-dash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenProvider supplies the bearer credential attached to outgoing requests.
type TokenProvider interface {
	// Token returns the current bearer token or an empty string.
	Token() string
}

// MetricsAdapter fetches metrics and tunnel snapshots over the
// request/response endpoints. Implementations attach the bearer token set via
// SetToken and map HTTP failures to the sentinel errors of this package.
type MetricsAdapter interface {
	TokenProvider

	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// FetchMetrics returns the envelope of the metrics endpoint. The payload
	// is left raw for the normalizer.
	FetchMetrics(ctx context.Context) (models.APIResponse, error)

	// FetchTunnels returns the envelope of the tunnel list endpoint.
	FetchTunnels(ctx context.Context) (models.APIResponse, error)
}

// PushDialer opens push channel connections.
type PushDialer interface {
	// Dial performs the handshake. It returns [ErrUnauthorized] (wrapped)
	// when the server rejects the credential.
	Dial(ctx context.Context) (PushConn, error)
}

// PushConn is an open push channel.
type PushConn interface {
	// ReadMessage blocks until the next message arrives, the channel closes,
	// or ctx is done. Any error means the connection is unusable.
	ReadMessage(ctx context.Context) ([]byte, error)

	// Close releases the connection. It is safe to call more than once.
	Close() error
}
