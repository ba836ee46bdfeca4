// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

type structuredFileConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		MetricsPath    string   `json:"metrics_path" yaml:"metrics_path"`
		TunnelsPath    string   `json:"tunnels_path" yaml:"tunnels_path"`
		PushPath       string   `json:"push_path" yaml:"push_path"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" yaml:"rate_limit"`
		Token          string   `json:"token" yaml:"token"`
	} `json:"adapter" yaml:"adapter"`

	Sync struct {
		PollInterval   Duration `json:"poll_interval" yaml:"poll_interval"`
		ReconnectDelay Duration `json:"reconnect_delay" yaml:"reconnect_delay"`
		DisableDemo    bool     `json:"disable_demo" yaml:"disable_demo"`
		Variant        string   `json:"variant" yaml:"variant"`
	} `json:"sync" yaml:"sync"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg structuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			MetricsPath:    fileCfg.Adapter.MetricsPath,
			TunnelsPath:    fileCfg.Adapter.TunnelsPath,
			PushPath:       fileCfg.Adapter.PushPath,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			RateLimit:      fileCfg.Adapter.RateLimit,
			Token:          fileCfg.Adapter.Token,
		},
		Sync: Sync{
			PollInterval:   time.Duration(fileCfg.Sync.PollInterval),
			ReconnectDelay: time.Duration(fileCfg.Sync.ReconnectDelay),
			DisableDemo:    fileCfg.Sync.DisableDemo,
			Variant:        fileCfg.Sync.Variant,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Bare JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(time.Duration(d).String())
}
