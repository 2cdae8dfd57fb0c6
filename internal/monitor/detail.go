package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const sparklineWidth = 40

// renderDetailView renders the full-attribute view for the selected
// process inside a scrollable viewport.
func (m Model) renderDetailView() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("proc-peek")
	subtitle := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | process detail")
	b.WriteString(HeaderStyle.Render(title + subtitle))
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.detailContent())
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("esc back | ↑↓ scroll | q quit"))

	return b.String()
}

// updateDetailViewportContent refreshes the viewport with the latest
// detail, preserving scroll position across refresh ticks.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	offset := m.detailViewport.YOffset
	m.detailViewport.SetContent(m.detailContent())
	m.detailViewport.SetYOffset(offset)
}

// detailContent builds the body text shown in the detail viewport.
func (m Model) detailContent() string {
	if m.detailErr != "" {
		return BannerStyle.Render("⚠ " + firstLine(m.detailErr))
	}
	if m.detail == nil {
		return LabelStyle.Render(" loading process detail...")
	}

	d := m.detail
	var b strings.Builder

	section := lipgloss.NewStyle().Foreground(ColorAccentDim).Bold(true)

	b.WriteString(section.Render(" Identity"))
	b.WriteString("\n")
	b.WriteString(detailRow("PID", fmt.Sprintf("%d", d.PID)))
	b.WriteString(detailRow("Name", d.Name))
	b.WriteString(detailRow("Status", d.Status))
	b.WriteString(detailRow("User", d.User))
	if !d.Created.IsZero() {
		b.WriteString(detailRow("Started", d.Created.Format("2006-01-02 15:04:05")))
	}
	if d.Exe != "" {
		b.WriteString(detailRow("Executable", d.Exe))
	}
	if d.Cmdline != "" {
		b.WriteString(detailRow("Command", d.Cmdline))
	}

	b.WriteString("\n")
	b.WriteString(section.Render(" Resources"))
	b.WriteString("\n")
	b.WriteString(detailRow("CPU",
		m.metricStyle(d.CPUPercent).Render(fmt.Sprintf("%.1f%%", d.CPUPercent))))
	b.WriteString(detailRow("Memory",
		m.metricStyle(float64(d.MemPercent)).Render(fmt.Sprintf("%.1f%%", d.MemPercent))))
	b.WriteString(detailRow("RSS", humanize.IBytes(d.MemoryRSS)))
	b.WriteString(detailRow("VMS", humanize.IBytes(d.MemoryVMS)))

	if d.IOReadBytes > 0 || d.IOWriteBytes > 0 {
		b.WriteString("\n")
		b.WriteString(section.Render(" I/O"))
		b.WriteString("\n")
		b.WriteString(detailRow("Read", humanize.IBytes(d.IOReadBytes)))
		b.WriteString(detailRow("Written", humanize.IBytes(d.IOWriteBytes)))
	}

	if hist := m.history.CPUHistory(d.PID, sparklineWidth); len(hist) > 1 {
		b.WriteString("\n")
		b.WriteString(section.Render(" CPU history"))
		b.WriteString("\n")
		b.WriteString("   ")
		b.WriteString(RenderSparkline(hist, sparklineWidth, ColorGraph))
		b.WriteString("\n")
	}

	return b.String()
}

// detailRow renders one label/value line of the detail view.
func detailRow(label, value string) string {
	if value == "" {
		value = ValueStyle.Render("-")
	}
	return fmt.Sprintf("   %s %s\n",
		LabelStyle.Render(fmt.Sprintf("%-12s", label)),
		value)
}
