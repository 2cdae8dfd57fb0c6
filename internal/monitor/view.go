package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Column widths for the process table. NAME takes the remainder.
const (
	colPID  = 7
	colUser = 12
	colCPU  = 7
	colMem  = 7
	colRSS  = 10
)

// renderDashboard renders the complete list-mode view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderOverviewLine())
	b.WriteString("\n\n")

	b.WriteString(m.renderTable())

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with summary stats.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("proc-peek")

	var parts []string
	if m.snapshot != nil {
		parts = append(parts, fmt.Sprintf("%d processes", len(m.snapshot.Records)))
		if m.snapshot.Skipped > 0 {
			parts = append(parts, SkippedStyle.Render(fmt.Sprintf("%d skipped", m.snapshot.Skipped)))
		}
	}
	parts = append(parts, fmt.Sprintf("sort: %s", m.sortKey))

	lastUpdate := m.SecondsSinceUpdate()
	var updateText string
	switch lastUpdate {
	case 0:
		updateText = "just now"
	case 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", lastUpdate)
	}
	parts = append(parts, "updated "+updateText)

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + strings.Join(parts, " | "))

	return HeaderStyle.Render(title + stats)
}

// renderOverviewLine renders the host-level summary: CPU, memory, uptime.
func (m Model) renderOverviewLine() string {
	if m.overview == nil {
		return LabelStyle.Render(" gathering system info...")
	}

	cpuPart := fmt.Sprintf("CPU %s %s",
		m.ProgressBar(12, m.overview.CPUPercent),
		m.metricStyle(m.overview.CPUPercent).Render(fmt.Sprintf("%5.1f%%", m.overview.CPUPercent)))

	memPart := fmt.Sprintf("MEM %s %s %s",
		m.ProgressBar(12, m.overview.MemPercent),
		m.metricStyle(m.overview.MemPercent).Render(fmt.Sprintf("%5.1f%%", m.overview.MemPercent)),
		LabelStyle.Render(fmt.Sprintf("of %s", humanize.IBytes(m.overview.MemTotal))))

	parts := []string{" " + cpuPart, memPart}
	if m.overview.Cores > 0 {
		parts = append(parts, LabelStyle.Render(fmt.Sprintf("%d cores", m.overview.Cores)))
	}
	if m.overview.Uptime > 0 {
		parts = append(parts, LabelStyle.Render("up "+formatUptime(m.overview.Uptime)))
	}

	return strings.Join(parts, "   ")
}

// renderTable renders the ranked process rows with a column header.
func (m Model) renderTable() string {
	if m.snapshot == nil {
		return LabelStyle.Render(" sampling processes...")
	}
	if len(m.rows) == 0 {
		return LabelStyle.Render(" no processes visible")
	}

	nameWidth := m.nameColumnWidth()

	var b strings.Builder
	header := fmt.Sprintf(" %*s  %-*s  %*s  %*s  %*s  %-*s",
		colPID, "PID",
		colUser, "USER",
		colCPU, "CPU%",
		colMem, "MEM%",
		colRSS, "RSS",
		nameWidth, "NAME")
	b.WriteString(ColumnHeaderStyle.Render(header))
	b.WriteString("\n")

	for i, rec := range m.rows {
		cpuCell := m.metricStyle(rec.CPUPercent).Render(fmt.Sprintf("%*.1f", colCPU, rec.CPUPercent))
		memCell := m.metricStyle(float64(rec.MemoryPercent)).Render(fmt.Sprintf("%*.1f", colMem, rec.MemoryPercent))

		line := fmt.Sprintf(" %*d  %-*s  %s  %s  %*s  %-*s",
			colPID, rec.PID,
			colUser, truncate(rec.User, colUser),
			cpuCell,
			memCell,
			colRSS, humanize.IBytes(rec.MemoryBytes),
			nameWidth, truncate(rec.Name, nameWidth))

		if i == m.selected {
			b.WriteString(SelectedRowStyle.Render(line))
		} else {
			b.WriteString(RowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderFooter renders the error banner (if any) and keyboard hints.
func (m Model) renderFooter() string {
	if m.lastErr != "" {
		return BannerStyle.Render("⚠ sampling failed: " + m.lastErr + " (showing last snapshot)")
	}

	hints := []string{
		"q quit",
		"s sort: " + m.sortKey.String(),
		"↑↓ select",
		"enter details",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// nameColumnWidth returns the width left over for the NAME column.
func (m Model) nameColumnWidth() int {
	fixed := 1 + colPID + 2 + colUser + 2 + colCPU + 2 + colMem + 2 + colRSS + 2
	width := m.width
	if width == 0 {
		width = 100
	}
	nameWidth := width - fixed - 1
	if nameWidth < 10 {
		nameWidth = 10
	}
	return nameWidth
}

// truncate shortens s to max characters, with an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// firstLine returns the first non-empty line of a multi-line error
// message, stripped of the leading failure symbol.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "✗"))
		if line != "" {
			return line
		}
	}
	return s
}

// formatUptime renders a duration as compact days/hours/minutes.
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
