// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// pageRow is one label/value line of an overlay page.
type pageRow struct {
	label string
	value string
}

// renderPage lays out an overlay: title, aligned label/value rows and a
// hotkey footer.
func renderPage(s styles, title string, rows []pageRow, hotKeys string) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.label))
	}

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, s.title.Render(title), "")
	if len(rows) == 0 {
		lines = append(lines, s.muted.Render("-"))
	}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Width(labelWidth+2).Render(r.label),
			s.value.Render(valueOrDash(r.value)),
		))
	}
	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, "", s.help.Render(hotKeys))
	}

	return strings.Join(lines, "\n")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
