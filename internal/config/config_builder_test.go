// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	b.environ = map[string]string{}
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterNonZeroWins verifies that later sources override earlier
// ones only where they carry a value.
func TestBuild_LaterNonZeroWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://a", MetricsPath: "/m"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://b"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://b", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/m", cfg.Adapter.MetricsPath)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultMetricsPath, cfg.Adapter.MetricsPath)
	assert.Equal(t, DefaultTunnelsPath, cfg.Adapter.TunnelsPath)
	assert.Equal(t, DefaultPushPath, cfg.Adapter.PushPath)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Sync.PollInterval)
	assert.Equal(t, DefaultReconnectDelay, cfg.Sync.ReconnectDelay)
	assert.False(t, cfg.Sync.DisableDemo)
	assert.Equal(t, VariantDesktop, cfg.Sync.Variant)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	b := newTestBuilder()
	b.environ = map[string]string{"SYNC_VARIANT": "mobile"}
	b.withEnv()
	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, VariantMobile, b.configs[0].Sync.Variant)
}

func TestWithEnv_RecordsError(t *testing.T) {
	b := newTestBuilder()
	b.environ = map[string]string{"ADAPTER_RATE_LIMIT": "many"}
	b.withEnv()
	assert.Empty(t, b.configs)
	assert.Error(t, b.err)
}

func TestWithFlags_RecordsError(t *testing.T) {
	b := newTestBuilder("-unknown").withFlags()
	assert.Empty(t, b.configs)
	assert.Error(t, b.err)
}

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withFile()
	assert.Error(t, b.err)
}

// ── priority ──────────────────────────────────────────────────────────────────

func TestBuilder_SourcePriority(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", "sync:\n  reconnect_delay: 9s\nstorage:\n  db:\n    dsn: file.db\n")
	b := newTestBuilder("-d", "flag.db")
	b.environ = map[string]string{
		"SYNC_POLL_INTERVAL":   "3s",
		"SYNC_RECONNECT_DELAY": "7s",
		"STORAGE_DB_DSN":       "env.db",
		"CONFIG":               path,
	}

	cfg, err := b.
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Sync.PollInterval)
	assert.Equal(t, 9*time.Second, cfg.Sync.ReconnectDelay)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestClientView_DemoFallbackInverted(t *testing.T) {
	cfg := defaultConfig()
	assert.True(t, cfg.ClientView().Sync.DemoFallback)

	cfg.Sync.DisableDemo = true
	assert.False(t, cfg.ClientView().Sync.DemoFallback)
}
