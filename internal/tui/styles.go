// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/tunnel-dash/internal/service"
	"github.com/MKhiriev/tunnel-dash/models"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
	border  lipgloss.Color
	up      lipgloss.Color
	down    lipgloss.Color
}

var (
	darkPalette = palette{
		text:    lipgloss.Color("#E6EDF3"),
		muted:   lipgloss.Color("#8B949E"),
		accent:  lipgloss.Color("#58A6FF"),
		success: lipgloss.Color("#3FB950"),
		warning: lipgloss.Color("#D29922"),
		danger:  lipgloss.Color("#F85149"),
		border:  lipgloss.Color("#30363D"),
		up:      lipgloss.Color("#A371F7"),
		down:    lipgloss.Color("#39C5CF"),
	}
	lightPalette = palette{
		text:    lipgloss.Color("#1F2328"),
		muted:   lipgloss.Color("#656D76"),
		accent:  lipgloss.Color("#0969DA"),
		success: lipgloss.Color("#1A7F37"),
		warning: lipgloss.Color("#9A6700"),
		danger:  lipgloss.Color("#CF222E"),
		border:  lipgloss.Color("#D0D7DE"),
		up:      lipgloss.Color("#8250DF"),
		down:    lipgloss.Color("#1B7C83"),
	}
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	muted    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	banner   lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	overlay  lipgloss.Style
	pillLive lipgloss.Style
	pillDown lipgloss.Style
	badge    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	up       lipgloss.Style
	down     lipgloss.Style
	toast    map[models.Severity]lipgloss.Style
}

func newStyles(theme string) styles {
	p := darkPalette
	if theme == service.ThemeLight {
		p = lightPalette
	}

	pill := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	toast := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1)

	return styles{
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:     lipgloss.NewStyle().Faint(true),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		label:    lipgloss.NewStyle().Foreground(p.muted),
		value:    lipgloss.NewStyle().Bold(true).Foreground(p.text),
		banner:   lipgloss.NewStyle().Bold(true).Foreground(p.warning).Border(lipgloss.NormalBorder()).BorderForeground(p.warning).Padding(0, 1),
		card:     card,
		selected: card.BorderForeground(p.accent),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		pillLive: pill.Foreground(p.success),
		pillDown: pill.Foreground(p.danger),
		badge:    lipgloss.NewStyle().Foreground(p.accent),
		active:   lipgloss.NewStyle().Foreground(p.success),
		inactive: lipgloss.NewStyle().Foreground(p.muted),
		up:       lipgloss.NewStyle().Foreground(p.up),
		down:     lipgloss.NewStyle().Foreground(p.down),
		toast: map[models.Severity]lipgloss.Style{
			models.SeverityInfo:    toast.BorderForeground(p.accent),
			models.SeveritySuccess: toast.BorderForeground(p.success),
			models.SeverityWarning: toast.BorderForeground(p.warning),
			models.SeverityError:   toast.BorderForeground(p.danger),
		},
	}
}

func (s styles) toastStyle(sev models.Severity) lipgloss.Style {
	if st, ok := s.toast[sev]; ok {
		return st
	}
	return s.toast[models.SeverityInfo]
}
