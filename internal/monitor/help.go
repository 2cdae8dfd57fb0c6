package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpBindings lists every keybinding shown in the overlay, in display order.
var helpBindings = []struct {
	keys string
	desc string
}{
	{"q / ctrl+c", "quit"},
	{"r", "refresh now"},
	{"s", "cycle sort key"},
	{"c", "sort by CPU"},
	{"m", "sort by memory"},
	{"n", "sort by name"},
	{"p", "sort by PID"},
	{"↑ / k", "select previous"},
	{"↓ / j", "select next"},
	{"home / end", "select first / last"},
	{"enter", "process detail"},
	{"esc", "back to list"},
	{"?", "toggle this help"},
}

// renderHelpOverlay renders the keybinding reference, centered when the
// terminal size is known. Any keypress other than quit dismisses it.
func (m Model) renderHelpOverlay() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("Keyboard shortcuts"))
	b.WriteString("\n\n")

	for _, binding := range helpBindings {
		b.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Width(14).
			Render(binding.keys))
		b.WriteString(LabelStyle.Render(binding.desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 3).
		Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
