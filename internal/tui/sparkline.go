// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"math"
	"strings"

	"github.com/MKhiriev/tunnel-dash/models"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as block characters scaled between their minimum
// and maximum. A flat series renders at the lowest level.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	top := float64(len(sparkBlocks) - 1)
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * top))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func trafficSeries(points []models.TrafficPoint) (up, down []float64) {
	up = make([]float64, 0, len(points))
	down = make([]float64, 0, len(points))
	for _, p := range points {
		up = append(up, p.UpMB)
		down = append(down, p.DownMB)
	}
	return up, down
}
