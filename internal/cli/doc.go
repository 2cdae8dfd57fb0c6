// Package cli implements the proc-peek command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small workflow function for the actual work.
//
// # Command Structure
//
// The root command is "proc-peek"; invoked bare it launches the
// interactive dashboard. Subcommands cover the non-interactive surface:
//
//	proc-peek              - Interactive process dashboard (TUI)
//	proc-peek list         - One-shot ranked process table on stdout
//	proc-peek init         - Create .proc-peek.yaml config
//	proc-peek version      - Version information
//	proc-peek completion   - Shell completion scripts
//
// # Configuration
//
// Config resolution follows flag > file > default: the --config flag
// names an explicit file, otherwise .proc-peek.yaml in the current
// directory and then ~/.config/proc-peek/config.yaml are tried, and
// built-in defaults apply when nothing is found. Command-line flags
// (--interval, --sort, --count) override whatever the file provided,
// and the merged result is validated before anything runs.
//
// # Errors
//
// Commands return structured errors from internal/errors. Usage
// mistakes (bad sort key, non-positive count, malformed duration)
// surface with a suggestion line and a non-zero exit code, keeping the
// one-shot mode honest in scripts and pipelines.
package cli
