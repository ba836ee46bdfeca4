// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of a backend error page ends up in an error
// string and therefore in the logs.
const maxErrorBody = 256

var statusErrors = map[int]error{
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrBadGateway,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return mapStatus(resp.StatusCode(), string(resp.Body()))
}

// mapStatus turns a non-2xx status into a sentinel-wrapped error shared by
// the REST and push transports.
func mapStatus(status int, body string) error {
	body = truncateBody(body)
	if body == "" {
		body = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: http %d: %s", sentinel, status, body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, body)
}

func truncateBody(body string) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= maxErrorBody {
		return body
	}
	return string(runes[:maxErrorBody]) + "..."
}

// IsTransient reports whether err is a backend condition that usually clears
// on its own, so the next poll or reconnect is expected to succeed.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrBadGateway)
}
