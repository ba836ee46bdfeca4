// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Every outgoing request gets a fresh [RequestIDHeader] value unless the
// caller already set one.
func NewHTTPClient() *HTTPClient {
	ids := NewRequestIDs()

	client := resty.New().
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			ids.Stamp(r.Header)
			return nil
		})

	return &HTTPClient{Client: client}
}

// WithRateLimit caps outgoing requests at perSecond with an equal burst.
// Requests over the limit fail immediately with resty.ErrRateLimitExceeded.
// A non-positive perSecond disables limiting.
func (c *HTTPClient) WithRateLimit(perSecond float64) *HTTPClient {
	if perSecond <= 0 {
		return c
	}

	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	c.SetRateLimiter(rate.NewLimiter(rate.Limit(perSecond), burst))
	return c
}

// WithTimeout sets the per-request timeout when d is positive.
func (c *HTTPClient) WithTimeout(d time.Duration) *HTTPClient {
	if d > 0 {
		c.SetTimeout(d)
	}
	return c
}
