package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/cli"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/history"
)

var historyFlags struct {
	limit  int
	id     string
	format string
	prune  int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent validation runs",
	Long: `List validation runs recorded by validate, dump and watch.

Run recording is enabled with history.enabled in the config file. The
sqlite backend keeps runs across invocations; the memory backend only
lasts for one process.

Examples:
  # Last 20 runs
  mechconfig history

  # One run as JSON
  mechconfig history --id 2f1c... --format json

  # Keep only the newest 100 runs
  mechconfig history --prune 100`,
	RunE: showHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to list (0 for all)")
	historyCmd.Flags().StringVar(&historyFlags.id, "id", "", "show a single run")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json, yaml")
	historyCmd.Flags().IntVar(&historyFlags.prune, "prune", -1, "delete all but the newest N runs")
}

func showHistory(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(historyFlags.format)
	if err != nil {
		return err
	}

	env, err := loadEnvironment(cmd, nil)
	if err != nil {
		return err
	}
	defer env.Close()

	if env.history == nil {
		return cli.NewConfigError("history.enabled", "run history is disabled")
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	if historyFlags.prune >= 0 {
		removed, err := env.history.Prune(ctx, historyFlags.prune)
		if err != nil {
			return cli.NewCommandError("history", err)
		}
		fmt.Fprintf(out, "Removed %d run(s)\n", removed)
		return nil
	}

	var runs []*history.Run
	if historyFlags.id != "" {
		run, err := env.history.Get(ctx, historyFlags.id)
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("no run with id %q", historyFlags.id)
		}
		if err != nil {
			return cli.NewCommandError("history", err)
		}
		runs = []*history.Run{run}
	} else {
		runs, err = env.history.List(ctx, historyFlags.limit)
		if err != nil {
			return cli.NewCommandError("history", err)
		}
	}

	if format != cli.FormatText {
		formatter, err := cli.NewFormatter(format)
		if err != nil {
			return err
		}
		return formatter.FormatTo(out, runs)
	}

	writeRuns(out, runs)
	return nil
}

func writeRuns(w io.Writer, runs []*history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No validation runs recorded")
		return
	}

	for _, run := range runs {
		mark := "✓"
		if !run.Success {
			mark = "✗"
		}
		generation := run.Generation
		if generation == "" {
			generation = "-"
		}
		fmt.Fprintf(w, "%s %s  %s  %-3s  %8s  %s\n",
			mark,
			run.CreatedAt.Local().Format(time.DateTime),
			shortID(run.ID),
			generation,
			run.Duration.Round(time.Microsecond),
			run.Path,
		)
		if run.ErrorCount > 0 {
			fmt.Fprintf(w, "    %d error(s): %s\n", run.ErrorCount, kindSummary(run.ErrorKinds))
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// kindSummary renders error counts as "Kind×n" in kind order.
func kindSummary(kinds map[string]int) string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = fmt.Sprintf("%s×%d", k, kinds[k])
	}
	return strings.Join(parts, ", ")
}
