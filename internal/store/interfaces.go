// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PreferenceRepository is a small key-value store for user preferences such
// as the colour theme.
type PreferenceRepository interface {
	// Get returns the stored value or [ErrPreferenceNotFound] (wrapped).
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value under key.
	Set(ctx context.Context, key, value string) error
}

// SessionRepository persists the bearer token of the current session.
type SessionRepository interface {
	SaveToken(ctx context.Context, token string) error
	// LoadToken returns the stored token or [ErrSessionNotFound] (wrapped).
	LoadToken(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}
