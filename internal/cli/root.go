package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/procpeek/proc-peek/internal/config"
	"github.com/procpeek/proc-peek/internal/errors"
	"github.com/procpeek/proc-peek/internal/logger"
	"github.com/procpeek/proc-peek/internal/monitor"
	"github.com/procpeek/proc-peek/internal/procsource"
	"github.com/procpeek/proc-peek/internal/rank"
	"github.com/procpeek/proc-peek/internal/ui"
)

// Persistent and dashboard flags
var (
	configFlag   string
	intervalFlag string
	sortFlag     string
	countFlag    int
)

// rootCmd launches the interactive dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "proc-peek",
	Short: "Peek at running processes",
	Long: `proc-peek is a terminal dashboard for running processes.

Without arguments it opens an interactive, auto-refreshing view of the
processes on this machine, sortable by CPU, memory, name, or PID. Use
'proc-peek list' for a one-shot snapshot suitable for scripts.

Examples:
  proc-peek
  proc-peek --interval 5s
  proc-peek list --sort memory --count 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "Refresh interval (e.g. 2s, 500ms)")
	rootCmd.Flags().StringVarP(&sortFlag, "sort", "s", "", "Initial sort key (cpu, memory, name, pid)")
	rootCmd.Flags().IntVarP(&countFlag, "count", "n", 0, "Rows to show per refresh (0 = fit terminal)")
}

// Execute runs the root command. Errors print to stderr and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError prefixes bare errors with the failure symbol. Structured
// errors already render their own, so only one appears either way.
func formatError(err error) string {
	msg := strings.TrimRight(err.Error(), "\n")
	if strings.HasPrefix(msg, ui.SymbolFail) {
		return msg
	}
	return ui.SymbolFail + " " + msg
}

// dashboardCommand resolves config, applies flag overrides, and runs the TUI.
func dashboardCommand() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	log := logger.Default()
	log.Debug("starting dashboard: interval=%s sort=%s", cfg.Interval, cfg.Sort)

	source := procsource.NewSystemSource()
	source.SetLogger(log)
	model := monitor.NewModel(source, cfg)
	if countFlag > 0 {
		// Only an explicit --count caps the dashboard; the config file's
		// count applies to the one-shot listing.
		model.SetMaxRows(countFlag)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard terminated unexpectedly",
			"Check that this terminal supports alternate screen mode")
	}
	return nil
}

// resolveConfig loads the config file (or defaults) and layers any
// command-line flag overrides on top, re-validating the result.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if intervalFlag != "" {
		d, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrUsage,
				fmt.Sprintf("Invalid interval: %q", intervalFlag),
				"Use a duration like 2s, 500ms, or 1m")
		}
		cfg.Interval = d
	}
	if sortFlag != "" {
		key, err := rank.ParseKey(sortFlag)
		if err != nil {
			return nil, err
		}
		cfg.Sort = key.String()
	}
	if countFlag != 0 {
		cfg.Count = countFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
