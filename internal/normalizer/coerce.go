// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// firstInt returns the first value under keys that coerces to an integer.
// Negative values clamp to zero.
func firstInt(raw map[string]any, keys []string) (int64, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case bool, map[string]any, []any:
			continue
		case string:
			if strings.TrimSpace(t) == "" {
				continue
			}
		}
		if f, isFloat := v.(float64); isFloat && (math.IsNaN(f) || math.IsInf(f, 0)) {
			continue
		}

		n, err := cast.ToInt64E(v)
		if err != nil {
			f, ferr := cast.ToFloat64E(v)
			if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			n = int64(f)
		}
		if n < 0 {
			n = 0
		}
		return n, true
	}
	return 0, false
}

func intOr(raw map[string]any, keys []string, def int64) int64 {
	if n, ok := firstInt(raw, keys); ok {
		return n
	}
	return def
}

// firstString returns the first non-empty value under keys rendered as a
// string. Objects and arrays are skipped.
func firstString(raw map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}

		s, err := cast.ToStringE(v)
		if err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s, true
		}
	}
	return "", false
}

func stringOr(raw map[string]any, keys []string, def string) string {
	if s, ok := firstString(raw, keys); ok {
		return s
	}
	return def
}

// firstTime returns the first value under keys that parses as a timestamp.
// Numbers are read as Unix seconds.
func firstTime(raw map[string]any, keys []string) *time.Time {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		if f, isFloat := v.(float64); isFloat {
			if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
				continue
			}
			v = int64(f)
		}

		t, err := cast.ToTimeE(v)
		if err != nil || t.IsZero() {
			continue
		}
		return &t
	}
	return nil
}
