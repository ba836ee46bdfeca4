// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/utils"
	"github.com/MKhiriev/tunnel-dash/models"
)

// demoSnapshot returns the fixed demonstration data shown when the backend
// cannot be reached on first load. It is always marked [models.SourceDemo].
func demoSnapshot(now time.Time) models.Snapshot {
	created := now.Add(-2 * time.Hour)
	heartbeat := now.Add(-5 * time.Second)

	tunnels := []models.TunnelView{
		{
			ID:             "demo-web",
			Name:           "Web Server",
			Protocol:       "http",
			Status:         models.TunnelActive,
			LocalEndpoint:  models.Endpoint{Host: models.DefaultLocalHost, Port: 80},
			PublicEndpoint: models.Endpoint{Port: 10001, Address: "103.78.0.204:10001"},
			RemotePort:     10001,
			BytesUp:        64000000,
			BytesDown:      128000000,
			CreatedAt:      &created,
			LastHeartbeat:  &heartbeat,
		},
		{
			ID:             "demo-api",
			Name:           "API Server",
			Protocol:       "tcp",
			Status:         models.TunnelActive,
			LocalEndpoint:  models.Endpoint{Host: models.DefaultLocalHost, Port: 3000},
			PublicEndpoint: models.Endpoint{Port: 10002},
			RemotePort:     10002,
			BytesUp:        32000000,
			BytesDown:      64000000,
			CreatedAt:      &created,
			LastHeartbeat:  &heartbeat,
		},
	}

	s := models.Snapshot{
		ActiveTunnelCount:    2,
		TotalConnectionCount: 15,
		TotalBytesUp:         128000000,
		TotalBytesDown:       256000000,
		Tunnels:              tunnels,
		Source:               models.SourceDemo,
		UpdatedAt:            now,
	}
	s.Traffic = []models.TrafficPoint{{
		At:     now,
		UpMB:   utils.BytesToMB(s.TotalBytesUp),
		DownMB: utils.BytesToMB(s.TotalBytesDown),
	}}

	return s
}
