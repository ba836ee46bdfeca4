// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/tunnel-dash/models"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Metrics is the aggregate-counter half of a snapshot.
type Metrics struct {
	ActiveTunnelCount    int64
	TotalConnectionCount int64
	TotalBytesUp         int64
	TotalBytesDown       int64
}

// NormalizeMetrics resolves the aggregate counters of a metrics payload.
// A nil map yields zero counters.
func NormalizeMetrics(raw map[string]any) Metrics {
	return Metrics{
		ActiveTunnelCount:    intOr(raw, activeTunnelsKeys, 0),
		TotalConnectionCount: intOr(raw, totalConnectionsKeys, 0),
		TotalBytesUp:         intOr(raw, totalBytesUpKeys, 0),
		TotalBytesDown:       intOr(raw, totalBytesDownKeys, 0),
	}
}

// NormalizeTunnels resolves a tunnel list payload. Anything that is not a
// list yields an empty, non-nil slice; list entries that are not objects
// are skipped. Server order is preserved.
func NormalizeTunnels(raw any) []models.TunnelView {
	list, ok := raw.([]any)
	if !ok {
		return []models.TunnelView{}
	}

	tunnels := make([]models.TunnelView, 0, len(list))
	for i, item := range list {
		obj, isObj := item.(map[string]any)
		if !isObj {
			continue
		}
		tunnels = append(tunnels, NormalizeTunnel(obj, i))
	}
	return tunnels
}

// NormalizeTunnel resolves one tunnel object. index is the position in the
// server list and is used only to build an ID when the payload has neither
// an id nor a name.
func NormalizeTunnel(raw map[string]any, index int) models.TunnelView {
	name, hasName := firstString(raw, tunnelNameKeys)
	if !hasName {
		name = models.DefaultTunnelName
	}

	id, hasID := firstString(raw, tunnelIDKeys)
	switch {
	case hasID:
	case hasName:
		id = name
	default:
		id = "tunnel-" + strconv.Itoa(index)
	}

	status := models.TunnelInactive
	if strings.EqualFold(stringOr(raw, statusKeys, ""), string(models.TunnelActive)) {
		status = models.TunnelActive
	}

	return models.TunnelView{
		ID:       id,
		Name:     name,
		Protocol: strings.ToLower(stringOr(raw, protocolKeys, models.DefaultProtocol)),
		Status:   status,
		LocalEndpoint: models.Endpoint{
			Host: stringOr(raw, localHostKeys, models.DefaultLocalHost),
			Port: int(intOr(raw, localPortKeys, 0)),
		},
		PublicEndpoint: models.Endpoint{
			Host:    stringOr(raw, remoteHostKeys, ""),
			Port:    int(intOr(raw, publicPortKeys, 0)),
			Address: stringOr(raw, publicAddressKeys, ""),
		},
		RemotePort:    int(intOr(raw, remotePortKeys, 0)),
		BytesUp:       intOr(raw, bytesUpKeys, 0),
		BytesDown:     intOr(raw, bytesDownKeys, 0),
		CreatedAt:     firstTime(raw, createdAtKeys),
		LastHeartbeat: firstTime(raw, lastHeartbeatKeys),
	}
}

// DecodeObject decodes a JSON object payload. JSON null decodes to a nil map
// without error.
func DecodeObject(data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decode object payload: %w", err)
	}
	return obj, nil
}

// DecodeAny decodes any JSON payload into generic values.
func DecodeAny(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return v, nil
}

// DecodeEnvelope decodes a push channel message.
func DecodeEnvelope(data []byte) (models.PushEnvelope, error) {
	var env models.PushEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.PushEnvelope{}, fmt.Errorf("decode push envelope: %w", err)
	}
	return env, nil
}
