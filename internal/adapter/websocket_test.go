// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newPushServer(t *testing.T, handle func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/dashboard/ws" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") == "Bearer expired" {
			http.Error(w, "token expired", http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handle(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPushURL(t *testing.T) {
	tests := []struct {
		address string
		path    string
		want    string
	}{
		{address: "http://localhost:8080", path: "/api/v1/dashboard/ws", want: "ws://localhost:8080/api/v1/dashboard/ws"},
		{address: "https://dash.example.com/", path: "ws", want: "wss://dash.example.com/ws"},
		{address: "localhost:9000/base", path: "/ws", want: "ws://localhost:9000/base/ws"},
	}
	for _, tt := range tests {
		got, err := pushURL(tt.address, tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := pushURL("ftp://host", "/ws")
	assert.Error(t, err)
}

func TestDial_ReceivesMessages(t *testing.T) {
	gotAuth := make(chan string, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"metrics","data":{}}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	d, err := NewWebSocketPushDialer(testAdapterConfig(srv.URL), staticToken("tok"), logger.Nop())
	require.NoError(t, err)

	conn, err := d.Dial(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, "Bearer tok", <-gotAuth)

	msg, err := conn.ReadMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"type":"metrics","data":{}}`, string(msg))

	msg, err = conn.ReadMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "not json", string(msg))

	_, err = conn.ReadMessage(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPushClosed)
}

func TestDial_Unauthorized(t *testing.T) {
	srv := newPushServer(t, func(*websocket.Conn) {})

	d, err := NewWebSocketPushDialer(testAdapterConfig(srv.URL), staticToken("expired"), logger.Nop())
	require.NoError(t, err)

	_, err = d.Dial(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDial_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	d, err := NewWebSocketPushDialer(testAdapterConfig(addr), nil, logger.Nop())
	require.NoError(t, err)

	_, err = d.Dial(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestReadMessage_ContextCancelClosesConn(t *testing.T) {
	srv := newPushServer(t, func(conn *websocket.Conn) {
		_, _, _ = conn.ReadMessage()
	})

	d, err := NewWebSocketPushDialer(testAdapterConfig(srv.URL), nil, logger.Nop())
	require.NoError(t, err)
	conn, err := d.Dial(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = conn.ReadMessage(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, conn.Close())
	assert.NoError(t, conn.Close())
}

func TestReadMessage_OversizedMessage(t *testing.T) {
	srv := newPushServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(strings.Repeat("x", MaxPushMessageSize+1)))
		time.Sleep(100 * time.Millisecond)
	})

	d, err := NewWebSocketPushDialer(testAdapterConfig(srv.URL), nil, logger.Nop())
	require.NoError(t, err)
	conn, err := d.Dial(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.ReadMessage(context.Background())
	assert.ErrorIs(t, err, ErrPushClosed)
}
