// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source is merged.
const (
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultMetricsPath    = "/api/metrics"
	DefaultTunnelsPath    = "/api/tunnels"
	DefaultPushPath       = "/api/v1/dashboard/ws"
	DefaultRequestTimeout = 10 * time.Second
	DefaultPollInterval   = 2 * time.Second
	DefaultReconnectDelay = 5 * time.Second
	DefaultVariant        = VariantDesktop
	DefaultDSN            = "tunnel-dash.db"
)

// Display variants. They only differ in byte formatting precision.
const (
	VariantDesktop = "desktop"
	VariantMobile  = "mobile"
)

// StructuredConfig is the top-level configuration container for the
// tunnel-dash client. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address, endpoint paths, and outbound
	// request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the timing and fallback settings of the sync client.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a configuration file. Files ending
	// in .yaml or .yml are read as YAML, anything else as JSON.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the REST endpoints and the push channel.
type Adapter struct {
	// HTTPAddress is the base URL of the dashboard backend
	// (e.g. "http://localhost:8080"). The push channel URL is derived from it.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_METRICS_PATH
	MetricsPath string `env:"METRICS_PATH"`

	// Env: ADAPTER_TUNNELS_PATH
	TunnelsPath string `env:"TUNNELS_PATH"`

	// Env: ADAPTER_PUSH_PATH
	PushPath string `env:"PUSH_PATH"`

	// RequestTimeout bounds a single REST request and the push handshake.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit caps outbound REST requests per second. Zero disables the
	// limiter.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// Token overrides the stored session token when set.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Sync holds the settings of the connection state machine.
type Sync struct {
	// PollInterval is the period of the fallback poll loop.
	// Env: SYNC_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// ReconnectDelay is the fixed delay before the push channel is redialed.
	// Env: SYNC_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`

	// DisableDemo turns off the demonstration snapshot shown when the backend
	// cannot be reached on first load.
	// Env: SYNC_DISABLE_DEMO
	DisableDemo bool `env:"DISABLE_DEMO"`

	// Variant selects the display variant: "desktop" or "mobile".
	// Env: SYNC_VARIANT
	Variant string `env:"VARIANT"`
}

// Storage groups the local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite data source name (a file path).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			MetricsPath:    DefaultMetricsPath,
			TunnelsPath:    DefaultTunnelsPath,
			PushPath:       DefaultPushPath,
			RequestTimeout: DefaultRequestTimeout,
		},
		Sync: Sync{
			PollInterval:   DefaultPollInterval,
			ReconnectDelay: DefaultReconnectDelay,
			Variant:        DefaultVariant,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Configuration file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}
