// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Sync.PollInterval <= 0 || cfg.Sync.ReconnectDelay <= 0 {
		return fmt.Errorf("%w: poll interval and reconnect delay must be positive", ErrInvalidSyncConfigs)
	}
	switch cfg.Sync.Variant {
	case VariantDesktop, VariantMobile:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidSyncConfigs, cfg.Sync.Variant)
	}

	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (a ClientAdapter) validate() error {
	u, err := url.Parse(strings.TrimSpace(a.HTTPAddress))
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: address %q must include scheme and host", ErrInvalidAdapterConfigs, a.HTTPAddress)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAdapterConfigs, u.Scheme)
	}

	for _, p := range []string{a.MetricsPath, a.TunnelsPath, a.PushPath} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: path %q must start with /", ErrInvalidAdapterConfigs, p)
		}
	}

	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if a.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidAdapterConfigs)
	}

	return nil
}
