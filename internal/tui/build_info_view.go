// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/MKhiriev/tunnel-dash/models"
)

// renderBuildInfoWindow shows the build stamp next to the live connection
// diagnostics.
func renderBuildInfoWindow(s styles, info models.AppBuildInfo, state models.ConnectionState, theme string) string {
	rows := []pageRow{
		{label: "Application", value: "tunnel-dash"},
		{label: "Version", value: info.BuildVersion()},
		{label: "Date", value: info.BuildDate()},
		{label: "Commit", value: info.BuildCommit()},
		{label: "Connection", value: state.Mode.String()},
		{label: "Dial attempts", value: strconv.Itoa(state.ReconnectAttempts)},
		{label: "Theme", value: theme},
	}
	return renderPage(s, "ABOUT", rows, "esc: back • q: quit")
}
