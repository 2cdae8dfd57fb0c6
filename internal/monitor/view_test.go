package monitor

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/procpeek/proc-peek/internal/procsource"
	"github.com/procpeek/proc-peek/internal/procsource/procsourcetest"
)

func TestRenderDashboard_ShowsRankedRows(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 101, Name: "nginx", User: "www", CPUPercent: 12.5, MemoryBytes: 64 << 20},
		procsource.Record{PID: 202, Name: "redis", User: "redis", CPUPercent: 3.0, MemoryBytes: 32 << 20},
	))
	m := NewModel(source, testConfig())
	m = sample(t, m, source)

	out := m.View()

	assert.Contains(t, out, "nginx")
	assert.Contains(t, out, "redis")
	assert.Contains(t, out, "101")
	assert.Contains(t, out, "PID")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "sort: cpu")
}

func TestRenderDashboard_OverviewLine(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 1, Name: "a"},
	))
	source.OverviewData = &procsource.Overview{
		CPUPercent: 25.0,
		Cores:      8,
		MemTotal:   16 << 30,
		MemPercent: 50.0,
		Uptime:     26 * time.Hour,
	}
	m := NewModel(source, testConfig())
	m = sample(t, m, source)

	out := m.View()

	assert.Contains(t, out, "8 cores")
	assert.Contains(t, out, "up 1d 2h")
	assert.Contains(t, out, "16 GiB")
}

func TestRenderDetailView_ShowsSections(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 7, Name: "worker", CPUPercent: 40.0},
	))
	source.Details[7] = &procsource.Detail{
		PID:        7,
		Name:       "worker",
		Status:     "running",
		User:       "app",
		Cmdline:    "/usr/bin/worker --queue jobs",
		CPUPercent: 40.0,
		MemoryRSS:  128 << 20,
	}
	m := NewModel(source, testConfig())
	m = sample(t, m, source)
	m.viewMode = ViewDetail

	msg := m.detailCmd(7)()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	out := m.View()

	assert.Contains(t, out, "Identity")
	assert.Contains(t, out, "Resources")
	assert.Contains(t, out, "worker")
	assert.Contains(t, out, "--queue jobs")
	assert.Contains(t, out, "128 MiB")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		max    int
		expect string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 5, "abcd…"},
		{"tiny", "abcdef", 1, "a"},
		{"multibyte cut keeps runes whole", "ångström", 5, "ångs…"},
		{"multibyte short", "åå", 5, "åå"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			assert.Equal(t, tt.expect, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"single", "boom", "boom"},
		{"multi", "first\nsecond", "first"},
		{"symbol", "✗ Sampling failed\n→ hint", "Sampling failed"},
		{"leading blank", "\n\nreal message", "real message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, firstLine(tt.input))
		})
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d      time.Duration
		expect string
	}{
		{30 * time.Minute, "30m"},
		{90 * time.Minute, "1h 30m"},
		{50 * time.Hour, "2d 2h"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, formatUptime(tt.d))
		})
	}
}
