// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// TrafficHistoryLimit is the number of traffic points kept for the
// upload/download chart.
const TrafficHistoryLimit = 10

// Placeholders rendered for values the backend did not report.
const (
	PortPlaceholder       = "N/A"
	RemotePortPlaceholder = "—"
	DefaultLocalHost      = "localhost"
	DefaultTunnelName     = "Tunnel"
	DefaultProtocol       = "tcp"
)

// SnapshotSource tells where the data of a [Snapshot] came from.
type SnapshotSource int

const (
	// SourceNone marks a zero snapshot that was never populated.
	SourceNone SnapshotSource = iota
	// SourcePoll marks data fetched over the request/response endpoints.
	SourcePoll
	// SourcePush marks data delivered over the push channel.
	SourcePush
	// SourceDemo marks the fixed demonstration data shown when the backend
	// could not be reached on first load. It is never live data.
	SourceDemo
)

func (s SnapshotSource) String() string {
	switch s {
	case SourcePoll:
		return "poll"
	case SourcePush:
		return "push"
	case SourceDemo:
		return "demo"
	default:
		return "none"
	}
}

// Snapshot is the normalized, point-in-time aggregate of metrics and the
// tunnel list shown to the user.
//
// A Snapshot is rebuilt on every update and never patched in place: holders
// of a Snapshot value can read it without synchronisation.
type Snapshot struct {
	ActiveTunnelCount    int64
	TotalConnectionCount int64
	TotalBytesUp         int64
	TotalBytesDown       int64

	// Tunnels keeps the order reported by the server. Never nil.
	Tunnels []TunnelView

	// Traffic holds at most TrafficHistoryLimit points, oldest first.
	Traffic []TrafficPoint

	Source    SnapshotSource
	UpdatedAt time.Time
}

// NewSnapshot returns an empty snapshot with a non-nil tunnel list.
func NewSnapshot() Snapshot {
	return Snapshot{Tunnels: []TunnelView{}, Traffic: []TrafficPoint{}}
}

// NoTunnels reports whether the server reported no tunnels at all.
func (s Snapshot) NoTunnels() bool {
	return len(s.Tunnels) == 0
}

// IsDemo reports whether the snapshot holds demonstration data.
func (s Snapshot) IsDemo() bool {
	return s.Source == SourceDemo
}

// Clone returns a deep copy of s with non-nil slices.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Tunnels = make([]TunnelView, len(s.Tunnels))
	for i, t := range s.Tunnels {
		c.Tunnels[i] = t.clone()
	}
	c.Traffic = make([]TrafficPoint, len(s.Traffic))
	copy(c.Traffic, s.Traffic)
	return c
}

// TunnelStatus is the running state of a tunnel.
type TunnelStatus string

const (
	TunnelActive   TunnelStatus = "active"
	TunnelInactive TunnelStatus = "inactive"
)

// TunnelView is one tunnel's displayable state. It is reconstructed on every
// update; only ID is stable across updates.
type TunnelView struct {
	ID       string
	Name     string
	Protocol string
	Status   TunnelStatus

	LocalEndpoint  Endpoint
	PublicEndpoint Endpoint

	// RemotePort is zero when unknown.
	RemotePort int

	BytesUp   int64
	BytesDown int64

	CreatedAt     *time.Time
	LastHeartbeat *time.Time
}

// IsActive reports whether the tunnel is running.
func (t TunnelView) IsActive() bool {
	return t.Status == TunnelActive
}

// RemotePortString renders the remote port or "—" when unknown.
func (t TunnelView) RemotePortString() string {
	if t.RemotePort <= 0 {
		return RemotePortPlaceholder
	}
	return strconv.Itoa(t.RemotePort)
}

func (t TunnelView) clone() TunnelView {
	c := t
	if t.CreatedAt != nil {
		v := *t.CreatedAt
		c.CreatedAt = &v
	}
	if t.LastHeartbeat != nil {
		v := *t.LastHeartbeat
		c.LastHeartbeat = &v
	}
	return c
}

// Endpoint is a host/port pair as reported by the backend.
//
// Address, when set, is a preformatted address supplied by the server
// (for example "203.0.113.4:10001") and takes precedence over Host and Port.
type Endpoint struct {
	Host    string
	Port    int
	Address string
}

// PortString renders the port or "N/A" when unknown.
func (e Endpoint) PortString() string {
	if e.Port <= 0 {
		return PortPlaceholder
	}
	return strconv.Itoa(e.Port)
}

func (e Endpoint) String() string {
	switch {
	case e.Address != "":
		return e.Address
	case e.Host != "":
		return e.Host + ":" + e.PortString()
	default:
		return "Port " + e.PortString()
	}
}

// TrafficPoint is one sample of the cumulative traffic counters, in MiB.
type TrafficPoint struct {
	At     time.Time
	UpMB   float64
	DownMB float64
}
