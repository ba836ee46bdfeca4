// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"ADAPTER_ADDRESS":         "https://dash.example.com",
		"ADAPTER_METRICS_PATH":    "/v2/metrics",
		"ADAPTER_TUNNELS_PATH":    "/v2/tunnels",
		"ADAPTER_PUSH_PATH":       "/v2/ws",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
		"ADAPTER_RATE_LIMIT":      "2.5",
		"ADAPTER_TOKEN":           "secret",

		"SYNC_POLL_INTERVAL":   "1s",
		"SYNC_RECONNECT_DELAY": "4s",
		"SYNC_DISABLE_DEMO":    "true",
		"SYNC_VARIANT":         "mobile",

		// вложенные префиксы: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/tmp/dash.db",
	}

	// Act
	cfg, err := parseEnv(environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.JSONFilePath)

	assert.Equal(t, "https://dash.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/v2/metrics", cfg.Adapter.MetricsPath)
	assert.Equal(t, "/v2/tunnels", cfg.Adapter.TunnelsPath)
	assert.Equal(t, "/v2/ws", cfg.Adapter.PushPath)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, "secret", cfg.Adapter.Token)

	assert.Equal(t, time.Second, cfg.Sync.PollInterval)
	assert.Equal(t, 4*time.Second, cfg.Sync.ReconnectDelay)
	assert.True(t, cfg.Sync.DisableDemo)
	assert.Equal(t, VariantMobile, cfg.Sync.Variant)

	assert.Equal(t, "/tmp/dash.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg, err := parseEnv(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_PrefixedWins(t *testing.T) {
	cfg, err := parseEnv(map[string]string{
		"SYNC_VARIANT":               "mobile",
		"TUNNEL_DASH_SYNC_VARIANT":   "desktop",
		"ADAPTER_TOKEN":              "bare",
		"TUNNEL_DASH_STORAGE_DB_DSN": "prefixed.db",
	})
	require.NoError(t, err)

	assert.Equal(t, VariantDesktop, cfg.Sync.Variant)
	assert.Equal(t, "bare", cfg.Adapter.Token)
	assert.Equal(t, "prefixed.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	_, err := parseEnv(map[string]string{"SYNC_POLL_INTERVAL": "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidPrefixedValue(t *testing.T) {
	_, err := parseEnv(map[string]string{"TUNNEL_DASH_ADAPTER_RATE_LIMIT": "lots"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPrefix)
}

func TestParseEnv_NilReadsProcessEnv(t *testing.T) {
	t.Setenv("TUNNEL_DASH_ADAPTER_TOKEN", "from-process")

	cfg, err := parseEnv(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.Adapter.Token)
}
