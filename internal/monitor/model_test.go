package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procpeek/proc-peek/internal/config"
	"github.com/procpeek/proc-peek/internal/errors"
	"github.com/procpeek/proc-peek/internal/procsource"
	"github.com/procpeek/proc-peek/internal/procsource/procsourcetest"
	"github.com/procpeek/proc-peek/internal/rank"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Interval = time.Second
	return cfg
}

func snapshotOf(records ...procsource.Record) *procsource.Snapshot {
	return &procsource.Snapshot{Records: records, Taken: time.Now()}
}

// sample pushes one snapshot result through Update the way the command
// goroutine would deliver it.
func sample(t *testing.T, m Model, source *procsourcetest.FakeSource) Model {
	t.Helper()

	msg := m.sampleCmd()()
	snapMsg, ok := msg.(snapshotMsg)
	require.True(t, ok, "sampleCmd should produce a snapshotMsg")

	updated, _ := m.Update(snapMsg)
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	source := procsourcetest.NewFakeSource()
	cfg := testConfig()

	m := NewModel(source, cfg)

	assert.Equal(t, rank.ByCPU, m.SortKey())
	assert.Equal(t, -1, m.selected)
	assert.Equal(t, cfg.Interval, m.interval)
	assert.Equal(t, cfg.Interval, m.timeout)
	assert.True(t, m.sampling, "initial sample from Init counts as in flight")
	assert.NotNil(t, m.history)
}

func TestNewModel_TickBeforeFirstSnapshotIsSkipped(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 1, Name: "alpha", CPUPercent: 1.0},
	))
	m := NewModel(source, testConfig())

	// A tick that lands before the initial sample resolves must not
	// start a second sample.
	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	assert.True(t, m.sampling)
	assert.Equal(t, 0, source.SnapshotCalls)
	assert.NotNil(t, cmd) // the next tick is still scheduled
}

func TestNewModel_SortFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Sort = "memory"

	m := NewModel(procsourcetest.NewFakeSource(), cfg)

	assert.Equal(t, rank.ByMemory, m.SortKey())
}

func TestNewModel_BadSortFallsBackToCPU(t *testing.T) {
	cfg := testConfig()
	cfg.Sort = "bogus"

	m := NewModel(procsourcetest.NewFakeSource(), cfg)

	assert.Equal(t, rank.ByCPU, m.SortKey())
}

func TestUpdate_SnapshotRanksRows(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 1, Name: "low", CPUPercent: 1.0},
		procsource.Record{PID: 2, Name: "high", CPUPercent: 90.0},
	))
	m := NewModel(source, testConfig())

	m = sample(t, m, source)

	require.Len(t, m.rows, 2)
	assert.Equal(t, int32(2), m.rows[0].PID)

	// Nothing is selected until the user navigates.
	assert.Equal(t, int32(0), m.SelectedPID())
	assert.Equal(t, -1, m.selected)
}

func TestUpdate_SelectionSurvivesRerankByPID(t *testing.T) {
	source := procsourcetest.NewFakeSource(
		snapshotOf(
			procsource.Record{PID: 1, Name: "a", CPUPercent: 50.0},
			procsource.Record{PID: 2, Name: "b", CPUPercent: 40.0},
		),
		// Next refresh flips the CPU ordering; PID 2 moves to the top.
		snapshotOf(
			procsource.Record{PID: 1, Name: "a", CPUPercent: 10.0},
			procsource.Record{PID: 2, Name: "b", CPUPercent: 60.0},
		),
	)
	m := NewModel(source, testConfig())
	m = sample(t, m, source)

	// Move the selection to PID 2 (second row after the CPU ranking).
	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, int32(2), m.SelectedPID())

	m = sample(t, m, source)

	// Still on PID 2, now at row 0.
	assert.Equal(t, int32(2), m.SelectedPID())
	assert.Equal(t, 0, m.selected)
}

func TestUpdate_SelectionClearsWhenProcessExits(t *testing.T) {
	source := procsourcetest.NewFakeSource(
		snapshotOf(
			procsource.Record{PID: 1, Name: "a", CPUPercent: 50.0},
			procsource.Record{PID: 2, Name: "b", CPUPercent: 40.0},
		),
		snapshotOf(
			procsource.Record{PID: 1, Name: "a", CPUPercent: 50.0},
		),
	)
	m := NewModel(source, testConfig())
	m = sample(t, m, source)

	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, int32(2), m.SelectedPID())

	m = sample(t, m, source)

	// PID 2 is gone; the selection clears instead of silently tracking
	// a different process.
	assert.Equal(t, int32(0), m.SelectedPID())
	assert.Equal(t, -1, m.selected)
}

func TestUpdate_ErrorKeepsPreviousSnapshot(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 1, Name: "a", CPUPercent: 50.0},
	))
	m := NewModel(source, testConfig())
	m = sample(t, m, source)
	require.Len(t, m.rows, 1)

	source.SnapshotErr = errors.New(errors.ErrSample,
		"Failed to enumerate processes",
		"Check permissions")
	m = sample(t, m, source)

	// Stale rows stay on screen and the failure surfaces as a banner.
	assert.Len(t, m.rows, 1)
	assert.NotEmpty(t, m.lastErr)
	assert.Contains(t, m.View(), "sampling failed")
}

func TestUpdate_ErrorBannerClearsOnRecovery(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 1, Name: "a", CPUPercent: 50.0},
	))
	m := NewModel(source, testConfig())

	source.SnapshotErr = errors.New(errors.ErrSample, "Sampling failed", "")
	m = sample(t, m, source)
	require.NotEmpty(t, m.lastErr)

	source.SnapshotErr = nil
	m = sample(t, m, source)

	assert.Empty(t, m.lastErr)
	assert.Len(t, m.rows, 1)
}

func TestUpdate_TickSkippedWhileSampling(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf())
	m := NewModel(source, testConfig())

	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	require.True(t, m.sampling)

	// A second tick while the sample is in flight must not stack
	// another sample.
	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	assert.True(t, m.sampling)
	assert.NotNil(t, cmd) // the next tick is still scheduled
}

func TestUpdate_SnapshotClearsSamplingFlag(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf())
	m := NewModel(source, testConfig())

	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)
	require.True(t, m.sampling)

	m = sample(t, m, source)

	assert.False(t, m.sampling)
}

func TestUpdate_WindowSizeControlsVisibleRows(t *testing.T) {
	records := make([]procsource.Record, 50)
	for i := range records {
		records[i] = procsource.Record{PID: int32(i + 1), Name: "p", CPUPercent: float64(i)}
	}
	source := procsourcetest.NewFakeSource(snapshotOf(records...))
	m := NewModel(source, testConfig())
	m = sample(t, m, source)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 16})
	m = updated.(Model)

	assert.Len(t, m.rows, 16-headerHeight-footerHeight)
}

func TestSetMaxRows_CapsVisibleRows(t *testing.T) {
	records := make([]procsource.Record, 30)
	for i := range records {
		records[i] = procsource.Record{PID: int32(i + 1), Name: "p", CPUPercent: float64(i)}
	}
	source := procsourcetest.NewFakeSource(snapshotOf(records...))
	m := NewModel(source, testConfig())
	m = sample(t, m, source)
	require.Len(t, m.rows, defaultVisibleRows)

	m.SetMaxRows(5)

	assert.Len(t, m.rows, 5)

	m.SetMaxRows(0)

	assert.Len(t, m.rows, defaultVisibleRows)
}

func TestUpdate_SkippedCountShownInHeader(t *testing.T) {
	snap := snapshotOf(procsource.Record{PID: 1, Name: "a"})
	snap.Skipped = 3
	source := procsourcetest.NewFakeSource(snap)
	m := NewModel(source, testConfig())

	m = sample(t, m, source)

	assert.Contains(t, m.View(), "3 skipped")
}

func TestView_QuittingRendersNothing(t *testing.T) {
	m := NewModel(procsourcetest.NewFakeSource(), testConfig())
	m.quitting = true

	assert.Empty(t, m.View())
}

func TestView_BeforeFirstSnapshot(t *testing.T) {
	m := NewModel(procsourcetest.NewFakeSource(), testConfig())

	assert.Contains(t, m.View(), "sampling processes")
}

func TestDetailCmd_DeliversDetail(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf(
		procsource.Record{PID: 7, Name: "worker", CPUPercent: 12.0},
	))
	source.Details[7] = &procsource.Detail{PID: 7, Name: "worker", Status: "running"}
	m := NewModel(source, testConfig())
	m = sample(t, m, source)

	msg := m.detailCmd(7)()
	dMsg, ok := msg.(detailMsg)
	require.True(t, ok)
	require.NoError(t, dMsg.err)

	updated, _ := m.Update(dMsg)
	m = updated.(Model)

	require.NotNil(t, m.detail)
	assert.Equal(t, "worker", m.detail.Name)
	assert.Empty(t, m.detailErr)
}

func TestDetailCmd_MissingProcess(t *testing.T) {
	source := procsourcetest.NewFakeSource(snapshotOf())
	m := NewModel(source, testConfig())

	msg := m.detailCmd(999)()
	dMsg, ok := msg.(detailMsg)
	require.True(t, ok)
	require.Error(t, dMsg.err)

	updated, _ := m.Update(dMsg)
	m = updated.(Model)

	assert.Nil(t, m.detail)
	assert.NotEmpty(t, m.detailErr)
}

func TestSecondsSinceUpdate_ZeroBeforeFirstSample(t *testing.T) {
	m := NewModel(procsourcetest.NewFakeSource(), testConfig())

	assert.Equal(t, 0, m.SecondsSinceUpdate())
}
