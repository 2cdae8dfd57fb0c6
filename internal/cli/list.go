package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/procpeek/proc-peek/internal/errors"
	"github.com/procpeek/proc-peek/internal/logger"
	"github.com/procpeek/proc-peek/internal/procsource"
	"github.com/procpeek/proc-peek/internal/rank"
	"github.com/procpeek/proc-peek/internal/ui"
)

// listTimeout bounds the single sampling pass in one-shot mode.
const listTimeout = 10 * time.Second

// Listing layout: fixed column widths plus the two-space gaps between
// the six columns; NAME absorbs whatever terminal width remains.
const (
	listFixedWidth = 7 + 12 + 6 + 6 + 10 + 10
	minNameWidth   = 10
	maxNameWidth   = 60

	// defaultListWidth is assumed when stdout is not a terminal.
	defaultListWidth = 100
)

var (
	listSortFlag  string
	listCountFlag int
)

// listCmd prints a one-shot ranked process table and exits.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a one-shot process listing",
	Long: `Take a single sample of running processes and print them as a table.

Output goes to stdout with no interactivity, so it composes with grep,
awk, and friends.

Examples:
  proc-peek list
  proc-peek list --sort memory
  proc-peek list -s name -n 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := procsource.NewSystemSource()
		source.SetLogger(logger.Default())
		return listCommand(cmd.OutOrStdout(), source, listSortFlag, listCountFlag)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSortFlag, "sort", "s", "cpu", "Sort key (cpu, memory, name, pid)")
	listCmd.Flags().IntVarP(&listCountFlag, "count", "n", 10, "Number of processes to show")
}

// listCommand samples once, ranks, and renders the table to w.
func listCommand(w io.Writer, source procsource.ProcessSource, sortKey string, count int) error {
	key, err := rank.ParseKey(sortKey)
	if err != nil {
		return err
	}
	if count < 1 {
		return errors.New(errors.ErrUsage,
			fmt.Sprintf("Count must be at least 1, got %d", count),
			"Pass a positive number to --count")
	}

	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()

	snap, err := source.Snapshot(ctx)
	if err != nil {
		return err
	}

	ranked := rank.Rank(snap.Records, key, count)

	columns := []ui.TableColumn{
		{Title: "PID", Width: 7},
		{Title: "USER", Width: 12},
		{Title: "CPU%", Width: 6},
		{Title: "MEM%", Width: 6},
		{Title: "RSS", Width: 10},
		{Title: "NAME", Width: nameColumnWidth(ui.TerminalWidth(defaultListWidth))},
	}

	rows := make([][]string, 0, len(ranked))
	for _, rec := range ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.PID),
			rec.User,
			fmt.Sprintf("%.1f", rec.CPUPercent),
			fmt.Sprintf("%.1f", rec.MemoryPercent),
			humanize.IBytes(rec.MemoryBytes),
			rec.Name,
		})
	}

	fmt.Fprint(w, ui.RenderSimpleTable(columns, rows))

	if snap.Skipped > 0 {
		fmt.Fprintf(w, "\n%s %d process(es) could not be read and were skipped\n",
			ui.SymbolSkipped, snap.Skipped)
	}

	return nil
}

// nameColumnWidth gives NAME the terminal width left over by the fixed
// columns, clamped to stay readable on both narrow and very wide terminals.
func nameColumnWidth(total int) int {
	w := total - listFixedWidth
	if w < minNameWidth {
		w = minNameWidth
	}
	if w > maxNameWidth {
		w = maxNameWidth
	}
	return w
}
