package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 7},
		{Title: "NAME", Width: 20},
	}
	rows := []table.Row{
		{"1", "systemd"},
		{"42", "sshd"},
	}

	tbl := NewTable(columns, rows)

	assert.Len(t, tbl.Columns(), 2)
	assert.Len(t, tbl.Rows(), 2)
	assert.Equal(t, "PID", tbl.Columns()[0].Title)
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 7},
		{Title: "NAME", Width: 20},
	}
	rows := [][]string{
		{"1", "systemd"},
		{"42", "sshd"},
	}

	out := RenderSimpleTable(columns, rows)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "PID")
	assert.Contains(t, out, "systemd")
	assert.Contains(t, out, "sshd")
}

func TestRenderSimpleTable_Empty(t *testing.T) {
	columns := []TableColumn{{Title: "PID", Width: 7}}

	assert.Empty(t, RenderSimpleTable(columns, nil))
}

func TestRenderPlainTable_AlignsColumns(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 5},
		{Title: "NAME", Width: 8},
	}
	rows := [][]string{
		{"1", "systemd"},
		{"42", "sshd"},
	}

	out := renderPlainTable(columns, rows)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "PID    NAME    ", lines[0])
	assert.Equal(t, "1      systemd ", lines[1])
	assert.Equal(t, "42     sshd    ", lines[2])
}

func TestRenderPlainTable_ClipsLongCells(t *testing.T) {
	columns := []TableColumn{{Title: "NAME", Width: 6}}
	rows := [][]string{{"a-very-long-process-name"}}

	out := renderPlainTable(columns, rows)

	assert.Contains(t, out, "a-ver…")
	assert.NotContains(t, out, "a-very-")
}

func TestClipCell_MultiByte(t *testing.T) {
	got := clipCell("ångström", 5)

	assert.Equal(t, "ångs…", got)
	assert.True(t, utf8.ValidString(got))
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{"pads short string", "ab", 5, "ab   "},
		{"exact width unchanged", "abcde", 5, "abcde"},
		{"longer than width unchanged", "abcdef", 5, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PadRight(tt.input, tt.width))
		})
	}
}

func TestPadRight_IgnoresANSICodes(t *testing.T) {
	styled := "\x1b[31mok\x1b[0m" // visible width 2

	got := PadRight(styled, 5)

	assert.Equal(t, styled+"   ", got)
}

func TestTerminalWidth_Fallback(t *testing.T) {
	// Test runners don't attach stdout to a terminal, so the fallback
	// path is what we can exercise deterministically.
	assert.Equal(t, 80, TerminalWidth(80))
}
