package monitor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/procpeek/proc-peek/internal/rank"
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyCycleSort   = "s"
	KeySortCPU     = "c"
	KeySortMemory  = "m"
	KeySortName    = "n"
	KeySortPID     = "p"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyExpand      = "enter"
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Quit works from every state, including mid-sample: the in-flight
	// snapshot command is simply abandoned.
	if key == KeyQuit || key == KeyQuitAlt {
		m.quitting = true
		return true, tea.Quit
	}

	// Help overlay: ? opens it, any other key closes it.
	if m.showHelp {
		m.showHelp = false
		return true, nil
	}
	if key == KeyToggleHelp {
		m.showHelp = true
		return true, nil
	}

	// Detail view: Esc or Enter returns to the list; the viewport
	// handles its own scrolling keys.
	if m.viewMode == ViewDetail {
		switch key {
		case KeyCollapse, KeyExpand:
			m.viewMode = ViewList
			m.detail = nil
			m.detailErr = ""
			return true, nil
		default:
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return true, cmd
		}
	}

	switch key {
	case KeyRefresh:
		if m.sampling {
			return true, nil
		}
		m.sampling = true
		return true, m.sampleCmd()

	case KeyCycleSort:
		m.setSortKey(m.sortKey.Next())
		return true, nil

	case KeySortCPU:
		m.setSortKey(rank.ByCPU)
		return true, nil

	case KeySortMemory:
		m.setSortKey(rank.ByMemory)
		return true, nil

	case KeySortName:
		m.setSortKey(rank.ByName)
		return true, nil

	case KeySortPID:
		m.setSortKey(rank.ByPID)
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
			m.selectedPID = m.rows[m.selected].PID
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.rows)-1 {
			m.selected++
			m.selectedPID = m.rows[m.selected].PID
		}
		return true, nil

	case KeySelectFirst:
		if len(m.rows) > 0 {
			m.selected = 0
			m.selectedPID = m.rows[0].PID
		}
		return true, nil

	case KeySelectLast:
		if len(m.rows) > 0 {
			m.selected = len(m.rows) - 1
			m.selectedPID = m.rows[m.selected].PID
		}
		return true, nil

	case KeyExpand:
		if m.selectedPID != 0 {
			m.viewMode = ViewDetail
			return true, m.detailCmd(m.selectedPID)
		}
		return true, nil
	}

	return false, nil
}

// setSortKey switches the active sort key and re-ranks immediately, so
// the change is visible without waiting for the next tick.
func (m *Model) setSortKey(key rank.Key) {
	if m.sortKey == key {
		return
	}
	m.sortKey = key
	m.rerank()
}
