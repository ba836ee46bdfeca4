// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the settings used by the transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	MetricsPath    string
	TunnelsPath    string
	PushPath       string
	RequestTimeout time.Duration
	RateLimit      float64
	Token          string
}

// ClientSync holds the settings used by the sync client.
type ClientSync struct {
	PollInterval   time.Duration
	ReconnectDelay time.Duration
	DemoFallback   bool
	Variant        string
}

// ClientStorage holds local storage settings.
type ClientStorage struct {
	DSN string
}

// ClientConfig is the validated configuration view used by the client
// runtime.
type ClientConfig struct {
	Adapter ClientAdapter
	Sync    ClientSync
	Storage ClientStorage
}

// GetClientConfig builds the merged configuration and returns its validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ClientView maps the merged configuration onto [ClientConfig].
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			MetricsPath:    cfg.Adapter.MetricsPath,
			TunnelsPath:    cfg.Adapter.TunnelsPath,
			PushPath:       cfg.Adapter.PushPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			Token:          cfg.Adapter.Token,
		},
		Sync: ClientSync{
			PollInterval:   cfg.Sync.PollInterval,
			ReconnectDelay: cfg.Sync.ReconnectDelay,
			DemoFallback:   !cfg.Sync.DisableDemo,
			Variant:        cfg.Sync.Variant,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
	}
}
