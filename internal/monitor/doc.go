// Package monitor implements the real-time TUI dashboard for local
// process metrics.
//
// The dashboard displays a ranked table of running processes with CPU,
// memory, and ownership columns, a host-level summary header, and a
// per-process detail view with CPU history sparklines.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (snapshot, sort key, selection, view mode)
//   - Update: Processes messages (keystrokes, tick events, new snapshots)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the configured interval (default 2s)
//  2. sampleCmd() captures a process snapshot in a command goroutine
//  3. snapshotMsg arrives with results, re-ranking the visible rows
//  4. View() re-renders the table with the new data
//
// Sampling runs off the Update loop, so keyboard input (including quit)
// stays responsive while the OS query is in flight. A tick that arrives
// while a sample is still running is skipped rather than stacked, and a
// failed sample keeps the previous snapshot on screen with an error
// banner instead of blanking the table.
//
// # Selection
//
// The selected row is tracked by PID, not index. When a refresh
// re-orders the table the selection follows the process to its new row;
// when the process has exited the selection clears until the user
// navigates again.
//
// # History and Sparklines
//
// The History type stores per-process CPU values in ring buffers for
// the detail view sparkline. Buffers for exited PIDs are pruned on
// every refresh since the OS recycles PIDs.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit
//	r           - Force refresh
//	s           - Cycle sort key (cpu/memory/name/pid)
//	c, m, n, p  - Jump straight to a sort key
//	j/k, ↑/↓    - Navigate process list
//	Enter       - Open process detail view
//	Esc         - Back to the list
//	?           - Toggle help overlay
package monitor
