// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the dashboard variables. Both TUNNEL_DASH_SYNC_VARIANT
// and SYNC_VARIANT are read; the prefixed name wins.
const EnvPrefix = "TUNNEL_DASH_"

// parseEnv reads a config layer from environ, or from the process
// environment when environ is nil. Unset variables stay zero so the layer
// only overrides what it actually carries.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	bare := &StructuredConfig{}
	if err := env.ParseWithOptions(bare, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	prefixed := &StructuredConfig{}
	if err := env.ParseWithOptions(prefixed, env.Options{Environment: environ, Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error getting %s env configs: %w", EnvPrefix, err)
	}

	if err := mergo.Merge(bare, prefixed, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging env configs: %w", err)
	}

	return bare, nil
}
