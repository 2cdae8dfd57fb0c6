package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/procpeek/proc-peek/internal/config"
	"github.com/procpeek/proc-peek/internal/procsource"
	"github.com/procpeek/proc-peek/internal/rank"
)

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Layout constants: rows consumed by chrome around the process table.
const (
	headerHeight = 4 // title line, overview line, blank, column header
	footerHeight = 2 // banner/hints

	// defaultVisibleRows is used before the first WindowSizeMsg arrives.
	defaultVisibleRows = 20
)

// Model is the Bubble Tea model for the process dashboard. All UI state
// (sort key, selection, view mode) lives here and is threaded through
// Update; there are no ambient globals, which keeps the state machine
// unit-testable without a terminal.
type Model struct {
	source procsource.ProcessSource

	// Most recent successful snapshot. Kept on sampling failure so the
	// table never goes blank (stale-but-available).
	snapshot *procsource.Snapshot
	overview *procsource.Overview

	// rows is the ranked, truncated view of the current snapshot.
	rows []procsource.Record

	sortKey     rank.Key
	selectedPID int32 // 0 means no selection
	selected    int   // index into rows; kept in sync with selectedPID

	interval   time.Duration
	timeout    time.Duration // per-sample timeout
	maxRows    int           // 0 means fit the terminal
	width      int
	height     int
	lastUpdate time.Time
	lastErr    string // transient banner; cleared on next good sample
	sampling   bool   // a sample is in flight; overlapping ticks are skipped
	quitting   bool
	showHelp   bool
	viewMode   ViewMode

	detail    *procsource.Detail
	detailErr string

	history    *History
	thresholds config.Thresholds

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries the result of one sampling pass.
type snapshotMsg struct {
	snapshot *procsource.Snapshot
	overview *procsource.Overview
	err      error
	time     time.Time
}

// detailMsg carries the detail lookup for the selected process.
type detailMsg struct {
	detail *procsource.Detail
	err    error
}

// NewModel creates a dashboard model sampling from source.
// The per-sample timeout equals the refresh interval: a sample that
// cannot finish within one tick is abandoned and the previous snapshot
// stays on screen.
func NewModel(source procsource.ProcessSource, cfg *config.Config) Model {
	key, err := rank.ParseKey(cfg.Sort)
	if err != nil {
		key = rank.ByCPU
	}

	return Model{
		source:  source,
		sortKey: key,
		// Init fires the initial sample, so the model starts with
		// sampling in flight; a tick landing before the first
		// snapshotMsg is skipped instead of stacking a second sample.
		sampling:   true,
		selected:   -1,
		interval:   cfg.Interval,
		timeout:    cfg.Interval,
		history:    NewHistory(DefaultHistorySize),
		thresholds: cfg.Thresholds,
	}
}

// Init starts the tick timer and triggers an initial sample.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.sampleCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		m.rerank()
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		if m.sampling {
			// Previous sample still running past its timeout window;
			// skip this tick rather than stacking samples.
			return m, m.tickCmd()
		}
		m.sampling = true
		return m, tea.Batch(m.tickCmd(), m.sampleCmd())

	case snapshotMsg:
		m.sampling = false
		m.applySnapshot(msg)
		if m.viewMode == ViewDetail && m.selectedPID != 0 {
			// Keep the detail view current with the fresh snapshot.
			return m, m.detailCmd(m.selectedPID)
		}

	case detailMsg:
		if msg.err != nil {
			m.detail = nil
			m.detailErr = msg.err.Error()
		} else {
			m.detail = msg.detail
			m.detailErr = ""
		}
		m.updateDetailViewportContent()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd returns a command that takes one snapshot. It runs in a
// bubbletea command goroutine, so keyboard input (including quit) stays
// responsive while the OS query is in flight.
func (m Model) sampleCmd() tea.Cmd {
	source := m.source
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := source.Snapshot(ctx)
		if err != nil {
			return snapshotMsg{err: err, time: time.Now()}
		}

		// Overview is best effort; a nil overview just thins the header.
		overview, _ := source.Overview(ctx)

		return snapshotMsg{snapshot: snap, overview: overview, time: time.Now()}
	}
}

// detailCmd returns a command that resolves full detail for one PID.
func (m Model) detailCmd(pid int32) tea.Cmd {
	source := m.source
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		d, err := source.Detail(ctx, pid)
		return detailMsg{detail: d, err: err}
	}
}

// applySnapshot folds a sampling result into the model. Errors keep the
// previous snapshot on screen and surface as a banner.
func (m *Model) applySnapshot(msg snapshotMsg) {
	m.lastUpdate = msg.time

	if msg.err != nil {
		m.lastErr = firstLine(msg.err.Error())
		return
	}

	m.lastErr = ""
	m.snapshot = msg.snapshot
	if msg.overview != nil {
		m.overview = msg.overview
	}

	m.history.Push(msg.snapshot.Records)
	m.history.Prune(msg.snapshot.Records)

	m.rerank()
}

// rerank rebuilds the visible rows from the current snapshot and view
// state, then restores the selection by PID. A selected process that
// left the view clears the selection entirely rather than silently
// jumping to a different row.
func (m *Model) rerank() {
	if m.snapshot == nil {
		m.rows = nil
		m.selected = -1
		m.selectedPID = 0
		return
	}

	m.rows = rank.Rank(m.snapshot.Records, m.sortKey, m.visibleRows())

	if m.selectedPID == 0 {
		m.selected = -1
		return
	}

	for i, rec := range m.rows {
		if rec.PID == m.selectedPID {
			m.selected = i
			return
		}
	}

	// Selection vanished with the new snapshot.
	m.selected = -1
	m.selectedPID = 0
}

// SetMaxRows caps the number of visible rows regardless of terminal
// height. Zero removes the cap.
func (m *Model) SetMaxRows(n int) {
	m.maxRows = n
	m.rerank()
}

// visibleRows returns how many process rows fit in the terminal,
// bounded by the explicit row cap when one is set.
func (m Model) visibleRows() int {
	rows := defaultVisibleRows
	if m.height > 0 {
		rows = m.height - headerHeight - footerHeight
		if rows < 1 {
			rows = 1
		}
	}
	if m.maxRows > 0 && m.maxRows < rows {
		rows = m.maxRows
	}
	return rows
}

// SelectedRecord returns the currently selected record from the ranked
// view, or nil when nothing is selected.
func (m Model) SelectedRecord() *procsource.Record {
	if m.selected >= 0 && m.selected < len(m.rows) {
		rec := m.rows[m.selected]
		return &rec
	}
	return nil
}

// SelectedPID returns the PID of the current selection, 0 for none.
func (m Model) SelectedPID() int32 {
	return m.selectedPID
}

// SortKey returns the active sort key.
func (m Model) SortKey() rank.Key {
	return m.sortKey
}

// SecondsSinceUpdate returns how many seconds have passed since the last update.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
