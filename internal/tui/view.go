// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/tunnel-dash/internal/app"
	"github.com/MKhiriev/tunnel-dash/internal/utils"
	"github.com/MKhiriev/tunnel-dash/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	pillLive    = "● LIVE"
	pillOffline = "● OFFLINE"
	statWidth   = 18
	nameWidth   = 28
)

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return m.styles.overlay.Render(renderBuildInfoWindow(m.styles, m.buildInfo, m.sync.State(), m.theme))
	}

	sections := []string{m.viewHeader()}
	if m.snapshot.IsDemo() {
		sections = append(sections, m.styles.banner.Render(app.MsgDemoBanner))
	}
	sections = append(sections,
		m.viewStats(),
		m.viewTraffic(),
		m.viewTunnels(),
	)
	if toasts := m.viewToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.help.View(keys))

	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m dashboardModel) viewHeader() string {
	pill := m.styles.pillDown.Render(pillOffline)
	if m.live {
		pill = m.styles.pillLive.Render(pillLive)
	}

	updated := "-"
	if m.hasData && !m.snapshot.UpdatedAt.IsZero() {
		at := m.snapshot.UpdatedAt
		updated = utils.FormatTimestamp(&at)
	}

	status := m.styles.muted.Render("Updated " + updated)
	if m.refreshing {
		status = m.styles.muted.Render("Refreshing...")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.title.Render("Tunnel Dashboard"), "  ", pill, "  ", status)
}

func (m dashboardModel) viewStats() string {
	s := m.snapshot
	cards := []string{
		m.statCard("Active tunnels", humanize.Comma(s.ActiveTunnelCount)),
		m.statCard("Connections", humanize.Comma(s.TotalConnectionCount)),
		m.statCard("Upload", utils.FormatBytes(s.TotalBytesUp, m.precision)),
		m.statCard("Download", utils.FormatBytes(s.TotalBytesDown, m.precision)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m dashboardModel) statCard(label, value string) string {
	body := m.styles.label.Render(label) + "\n" + m.styles.value.Render(value)
	return m.styles.card.Width(statWidth).Render(body)
}

func (m dashboardModel) viewTraffic() string {
	points := m.snapshot.Traffic
	if len(points) == 0 {
		return m.styles.muted.Render("Traffic: waiting for data")
	}

	up, down := trafficSeries(points)
	last := points[len(points)-1]

	var b strings.Builder
	b.WriteString(m.styles.label.Render("Traffic (MB)"))
	b.WriteString("\n")
	b.WriteString(m.styles.up.Render("↑ " + sparkline(up)))
	b.WriteString(fmt.Sprintf(" %.2f", last.UpMB))
	b.WriteString("\n")
	b.WriteString(m.styles.down.Render("↓ " + sparkline(down)))
	b.WriteString(fmt.Sprintf(" %.2f", last.DownMB))
	return b.String()
}

func (m dashboardModel) viewTunnels() string {
	title := m.styles.label.Render(fmt.Sprintf("Tunnels (%d)", len(m.snapshot.Tunnels)))

	if m.snapshot.NoTunnels() {
		empty := m.styles.card.Render(
			m.styles.value.Render(app.MsgNoTunnels) + "\n" + m.styles.muted.Render(app.MsgNoTunnelsHint))
		return title + "\n" + empty
	}

	cards := make([]string, 0, len(m.snapshot.Tunnels)+1)
	cards = append(cards, title)
	for i, t := range m.snapshot.Tunnels {
		cards = append(cards, m.tunnelCard(t, i == m.selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m dashboardModel) tunnelCard(t models.TunnelView, selected bool) string {
	status := m.styles.inactive.Render("○ " + string(t.Status))
	if t.IsActive() {
		status = m.styles.active.Render("● " + string(t.Status))
	}

	head := fmt.Sprintf("%s  %s  %s",
		m.styles.value.Render(fitText(t.Name, nameWidth)),
		m.styles.badge.Render("["+strings.ToUpper(t.Protocol)+"]"),
		status,
	)

	endpoints := fmt.Sprintf("%s %s   %s %s   %s %s",
		m.styles.label.Render("Local"), t.LocalEndpoint.String(),
		m.styles.label.Render("Public"), t.PublicEndpoint.String(),
		m.styles.label.Render("Remote port"), t.RemotePortString(),
	)

	traffic := fmt.Sprintf("%s   %s   %s %s   %s %s",
		m.styles.up.Render("↑ "+utils.FormatBytes(t.BytesUp, m.precision)),
		m.styles.down.Render("↓ "+utils.FormatBytes(t.BytesDown, m.precision)),
		m.styles.label.Render("Created"), valueOrDash(utils.FormatTimestamp(t.CreatedAt)),
		m.styles.label.Render("Heartbeat"), m.relative(t),
	)

	style := m.styles.card
	if selected {
		style = m.styles.selected
	}
	return style.Render(head + "\n" + endpoints + "\n" + traffic)
}

func (m dashboardModel) relative(t models.TunnelView) string {
	if t.LastHeartbeat == nil {
		return "-"
	}
	return humanize.RelTime(*t.LastHeartbeat, m.clock, "ago", "from now")
}

func (m dashboardModel) viewToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		rendered = append(rendered, m.styles.toastStyle(t.notification.Severity).Render(t.notification.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
