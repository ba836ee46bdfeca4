// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/tunnel-dash/internal/config"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/utils"
	"github.com/MKhiriev/tunnel-dash/models"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type httpMetricsAdapter struct {
	client *utils.HTTPClient

	metricsPath string
	tunnelsPath string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPMetricsAdapter constructs the resty implementation of
// [MetricsAdapter]. It normalises the base URL from cfg.HTTPAddress and
// configures the request timeout and the optional client-side rate limit.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPMetricsAdapter(cfg config.ClientAdapter, logger *logger.Logger) (MetricsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithTimeout(cfg.RequestTimeout).
		WithRateLimit(cfg.RateLimit)
	client.SetBaseURL(baseURL)

	return &httpMetricsAdapter{
		client:      client,
		metricsPath: cfg.MetricsPath,
		tunnelsPath: cfg.TunnelsPath,
		token:       strings.TrimSpace(cfg.Token),
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [MetricsAdapter].
func (h *httpMetricsAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [TokenProvider].
func (h *httpMetricsAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchMetrics implements [MetricsAdapter]. It GETs the metrics path.
func (h *httpMetricsAdapter) FetchMetrics(ctx context.Context) (models.APIResponse, error) {
	return h.fetch(ctx, "metrics", h.metricsPath)
}

// FetchTunnels implements [MetricsAdapter]. It GETs the tunnel list path.
func (h *httpMetricsAdapter) FetchTunnels(ctx context.Context) (models.APIResponse, error) {
	return h.fetch(ctx, "tunnels", h.tunnelsPath)
}

func (h *httpMetricsAdapter) fetch(ctx context.Context, name, path string) (models.APIResponse, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return models.APIResponse{}, fmt.Errorf("%s request: %w", name, err)
	}

	h.logger.Debug().
		Str("func", "httpMetricsAdapter.fetch").
		Str("endpoint", name).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		return models.APIResponse{}, err
	}

	var out models.APIResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.APIResponse{}, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, name, err)
	}

	return out, nil
}

func (h *httpMetricsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
