// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus_EmptyBodyUsesStatusText(t *testing.T) {
	err := mapStatus(http.StatusNotFound, "  ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "endpoint not found: http 404: Not Found")
}

func TestMapStatus_GatewayTimeoutIsBadGateway(t *testing.T) {
	assert.ErrorIs(t, mapStatus(http.StatusGatewayTimeout, ""), ErrBadGateway)
}

func TestMapStatus_TruncatesLongBody(t *testing.T) {
	body := strings.Repeat("я", maxErrorBody+50)

	err := mapStatus(http.StatusInternalServerError, body)
	assert.ErrorIs(t, err, ErrInternalServerError)

	msg := err.Error()
	assert.True(t, strings.HasSuffix(msg, "..."))
	assert.Equal(t, maxErrorBody, strings.Count(msg, "я"))
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "rate limited", err: mapStatus(http.StatusTooManyRequests, ""), want: true},
		{name: "unavailable", err: mapStatus(http.StatusServiceUnavailable, ""), want: true},
		{name: "bad gateway wrapped", err: fmt.Errorf("fetch metrics: %w", mapStatus(http.StatusBadGateway, "")), want: true},
		{name: "unauthorized", err: mapStatus(http.StatusUnauthorized, ""), want: false},
		{name: "internal", err: mapStatus(http.StatusInternalServerError, ""), want: false},
		{name: "other", err: errors.New("dial tcp: refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}
