// Package ui provides terminal UI helpers for proc-peek's CLI output.
//
// The package covers the non-interactive surface: table rendering for
// the one-shot listing, ANSI color constants, and terminal capability
// detection. The full-screen dashboard keeps its own richer styling in
// internal/monitor.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and skipped processes
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - Accents
//
// ColorEnabled reports whether stdout is a color-capable terminal;
// piped output degrades to plain text automatically via lipgloss.
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark)  - Operation completed
//	SymbolFail     (X)          - Operation failed
//	SymbolSkipped  (slashed)    - Process skipped during sampling
package ui
