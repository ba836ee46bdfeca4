// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math"
	"strconv"
	"time"
)

// Precision selects the rounding rule used by [FormatBytes].
type Precision int

const (
	// PrecisionDesktop rounds to two decimals and drops trailing zeros:
	// 1536 -> "1.5 KB", 10240 -> "10 KB", 128000000 -> "122.07 MB".
	PrecisionDesktop Precision = iota
	// PrecisionMobile renders values >= 10 without decimals and smaller
	// values with one decimal: 1536 -> "1.5 KB", 128000000 -> "122 MB".
	PrecisionMobile
)

// ParsePrecision maps a dashboard variant name to its byte precision.
// Unknown names fall back to the desktop rule.
func ParsePrecision(variant string) Precision {
	if variant == "mobile" {
		return PrecisionMobile
	}
	return PrecisionDesktop
}

const byteScale = 1024

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count using the largest unit among
// B, KB, MB, GB and TB that keeps the scaled value >= 1 (scale 1024).
// Zero and negative counts render as "0 B".
func FormatBytes(bytes int64, p Precision) string {
	if bytes <= 0 {
		return "0 B"
	}

	value := float64(bytes)
	unit := 0
	for value >= byteScale && unit < len(byteUnits)-1 {
		value /= byteScale
		unit++
	}

	return formatScaled(value, p) + " " + byteUnits[unit]
}

func formatScaled(value float64, p Precision) string {
	if p == PrecisionMobile {
		digits := 1
		if value >= 10 {
			digits = 0
		}
		return strconv.FormatFloat(roundHalfUp(value, digits), 'f', digits, 64)
	}

	return strconv.FormatFloat(roundHalfUp(value, 2), 'f', -1, 64)
}

// roundHalfUp rounds v to the given number of decimals, ties away from zero.
func roundHalfUp(v float64, digits int) float64 {
	pow := math.Pow10(digits)
	return math.Round(v*pow) / pow
}

// BytesToMB converts a byte count to MiB for chart points.
func BytesToMB(bytes int64) float64 {
	return float64(bytes) / (byteScale * byteScale)
}

// TimestampLayout is the layout used for absolute timestamps in the UI.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in local time, or an empty string for nil.
func FormatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Local().Format(TimestampLayout)
}
