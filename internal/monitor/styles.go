package monitor

import (
	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for metrics
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Graph color
	ColorGraph = lipgloss.Color("#00FFFF") // Neon cyan
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Padding(0, 1)

	ColumnHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorAccentDim).
				Bold(true)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorBorder).
				Bold(true)

	NameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// sparklineBlocks are block characters for 8-level vertical resolution
// (lowest to highest), used for the detail view CPU history graph.
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// MetricColorWithThresholds returns the appropriate color for a
// percentage-based metric using the provided warning and critical
// threshold values.
func MetricColorWithThresholds(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case percent >= float64(critical):
		return ColorCritical
	case percent >= float64(warning):
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// metricStyle returns a style colored by the model's configured thresholds.
func (m Model) metricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(
		MetricColorWithThresholds(percent, m.thresholds.Warning, m.thresholds.Critical))
}

// ProgressBar renders a bracketless progress bar with threshold-based coloring.
func (m Model) ProgressBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "▰"
		} else {
			bar += "▱"
		}
	}

	return m.metricStyle(percent).Render(bar)
}

// RenderSparkline renders percentage history as a block-character
// sparkline, right-aligned so the newest sample sits at the right edge.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if width < 1 || len(data) == 0 {
		return ""
	}

	// Keep only the most recent width samples.
	if len(data) > width {
		data = data[len(data)-width:]
	}

	line := make([]rune, 0, width)
	for i := len(data); i < width; i++ {
		line = append(line, ' ')
	}
	for _, v := range data {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100 * float64(len(sparklineBlocks)-1))
		line = append(line, sparklineBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(string(line))
}
