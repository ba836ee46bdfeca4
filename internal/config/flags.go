// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a backend base URL (e.g. http://localhost:8080)
//	-metrics-path metrics endpoint path
//	-tunnels-path tunnel list endpoint path
//	-push-path push channel path
//	-request-timeout request timeout (e.g. "10s")
//	-rate-limit outbound requests per second, 0 for unlimited
//	-token bearer token overriding the stored session
//	-poll-interval fallback poll interval (e.g. "2s")
//	-reconnect-delay push reconnect delay (e.g. "5s")
//	-no-demo disable the demonstration snapshot
//	-variant display variant: desktop or mobile
//	-d local database DSN
//	-c/-config configuration file path (JSON or YAML)
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("tunnel-dash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Backend base URL")
	fs.StringVar(&cfg.Adapter.MetricsPath, "metrics-path", "", "Metrics endpoint path")
	fs.StringVar(&cfg.Adapter.TunnelsPath, "tunnels-path", "", "Tunnel list endpoint path")
	fs.StringVar(&cfg.Adapter.PushPath, "push-path", "", "Push channel path")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.Float64Var(&cfg.Adapter.RateLimit, "rate-limit", 0, "Outbound requests per second, 0 for unlimited")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token")
	fs.DurationVar(&cfg.Sync.PollInterval, "poll-interval", 0, "Fallback poll interval (e.g., 2s)")
	fs.DurationVar(&cfg.Sync.ReconnectDelay, "reconnect-delay", 0, "Push reconnect delay (e.g., 5s)")
	fs.BoolVar(&cfg.Sync.DisableDemo, "no-demo", false, "Disable demonstration data")
	fs.StringVar(&cfg.Sync.Variant, "variant", "", "Display variant: desktop or mobile")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Local database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
