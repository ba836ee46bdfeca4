// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAuthentication is terminal: the backend rejected the credential.
	ErrAuthentication = errors.New("authentication failed")

	ErrTokenExpired = errors.New("token is expired")

	ErrNotStarted     = errors.New("sync client not started")
	ErrClientStopped  = errors.New("sync client stopped")
	ErrAlreadyStarted = errors.New("sync client already started")
)
