// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import jsoniter "github.com/json-iterator/go"

// Push message types understood by the dashboard.
const (
	PushTypeMetrics      = "metrics"
	PushTypeTunnelUpdate = "tunnel_update"
)

// APIResponse is the envelope returned by the request/response endpoints:
// {"success": bool, "data": ...}.
//
// Data is kept raw because its shape is not fixed across API versions; it is
// decoded by the normalizer.
type APIResponse struct {
	Success bool                `json:"success"`
	Data    jsoniter.RawMessage `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
}

// HasData reports whether the response is successful and carries a non-null
// payload.
func (r APIResponse) HasData() bool {
	if !r.Success || len(r.Data) == 0 {
		return false
	}
	return string(r.Data) != "null"
}

// PushEnvelope is a typed message delivered over the push channel:
// {"type": "...", "data": ...}.
type PushEnvelope struct {
	Type string              `json:"type"`
	Data jsoniter.RawMessage `json:"data"`
}
