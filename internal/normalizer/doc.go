// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package normalizer turns loosely typed metrics and tunnel payloads into
// canonical [models.Snapshot] parts.
//
// The backend payload shape is not fixed across API versions: the same
// logical field may arrive in camelCase or snake_case, as a number or a
// numeric string, or not at all. Every field is resolved through an explicit
// priority table (see fields.go); the first present, non-null and coercible
// value wins and missing values fall back to documented defaults.
//
// Normalization is total. No input makes these functions fail or panic.
package normalizer
