// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

// Priority tables. Keys are tried left to right.
var (
	activeTunnelsKeys    = []string{"activeTunnels", "active_tunnels"}
	totalConnectionsKeys = []string{"totalConnections", "total_connections"}
	totalBytesUpKeys     = []string{"totalBytesUp", "total_bytes_up"}
	totalBytesDownKeys   = []string{"totalBytesDown", "total_bytes_down"}

	tunnelIDKeys      = []string{"id", "tunnel_id", "tunnelId"}
	tunnelNameKeys    = []string{"name", "label"}
	protocolKeys      = []string{"protocol"}
	statusKeys        = []string{"status"}
	localHostKeys     = []string{"local_host", "localHost"}
	localPortKeys     = []string{"local_port", "localPort"}
	publicAddressKeys = []string{"public_host", "publicHost"}
	remoteHostKeys    = []string{"remote_host", "remoteHost"}
	publicPortKeys    = []string{"public_port", "publicPort"}
	remotePortKeys    = []string{"remote_port", "remotePort", "public_port", "publicPort"}
	bytesUpKeys       = []string{"bytes_up", "bytesUp"}
	bytesDownKeys     = []string{"bytes_down", "bytesDown"}
	createdAtKeys     = []string{"created_at", "createdAt"}
	lastHeartbeatKeys = []string{"last_heartbeat", "lastHeartbeat"}
)
