// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("endpoint not found")
	ErrRateLimited         = errors.New("rate limited by backend")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrPushClosed          = errors.New("push channel closed")
)
