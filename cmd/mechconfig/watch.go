package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/cli"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/source/git"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/telemetry/health"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/telemetry/tracing"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/watch"
)

// Revalidation triggers, used as the metrics "trigger" label.
const (
	triggerInitial  = "initial"
	triggerChange   = "change"
	triggerSchedule = "schedule"
	triggerPull     = "pull"
)

var watchFlags struct {
	schedule    string
	metricsAddr string
	debounce    time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-validate mechanism files when they change",
	Long: `Watch a mechanism file or directory and re-validate on every change.

Changed files are validated after a short quiet period so that editors which
write in several steps trigger a single pass. A cron schedule can add
periodic full passes, and an HTTP endpoint can expose parse metrics
together with /health, /ready and /version probes. /ready answers 503 while
any watched file is invalid.
When the config file exists it is watched too, and parser settings are
reloaded when it changes.

With --git (or git.repository in the config and no path) the repository is
cloned and pulled every git.poll_interval; the mechanism files touched by
each new commit are re-validated.

The command runs until interrupted (SIGINT or SIGTERM).

Examples:
  # Watch a directory
  mechconfig watch configs/

  # Also validate everything every 15 minutes
  mechconfig watch configs/ --schedule "*/15 * * * *"

  # Serve metrics at http://localhost:9090/metrics
  mechconfig watch configs/ --metrics-addr localhost:9090

  # Follow the main branch of a repository
  mechconfig watch --git https://github.com/org/mechanisms.git --git-branch main`,
	Args: cobra.MaximumNArgs(1),
	RunE: watchMechanisms,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron schedule for full re-validation (default from watch.schedule)")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "quiet period before re-validating (default from watch.debounce)")
	addGitFlags(watchCmd)
}

func watchMechanisms(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd, func(cfg *config.Config) {
		if watchFlags.schedule != "" {
			cfg.Watch.Schedule = watchFlags.schedule
		}
		if watchFlags.debounce > 0 {
			cfg.Watch.Debounce = watchFlags.debounce
		}
		if watchFlags.metricsAddr != "" {
			cfg.Telemetry.Metrics.Enabled = true
			cfg.Telemetry.Metrics.ListenAddress = watchFlags.metricsAddr
		}
		applyGitFlags(cfg)
	})
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, stop := cli.SetupSignalHandlerWithParent(commandContext(cmd))
	defer stop()

	if len(args) == 1 && gitFlags.url == "" {
		return runWatch(ctx, cmd, env, args[0], nil)
	}
	if env.cfg.Git.Repository == "" {
		return fmt.Errorf("a path or --git repository is required")
	}

	repo, commit, err := env.openRepository(ctx)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer repo.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Repository %s\n\n", describeCommit(repo, commit))
	poller := git.NewPoller(repo, env.cfg.Git.PollInterval, env.cfg.Watch.Extensions, env.logger.Slog())
	return runWatch(ctx, cmd, env, repo.MechanismPath(), poller)
}

// runWatch blocks until ctx is cancelled or the watcher fails. Changes are
// detected by polling the repository when poller is non-nil and by
// watching root otherwise.
func runWatch(ctx context.Context, cmd *cobra.Command, env *environment, root string, poller *git.Poller) error {
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("cannot watch %s: %w", root, err)
	}

	rv := newRevalidator(cmd, env, root)
	rv.all(ctx, triggerInitial)

	if env.cfg.Telemetry.Metrics.Enabled {
		checker := health.New(2 * time.Second)
		checker.RegisterCheck("mechanisms", rv.state.Check)
		if env.history != nil {
			checker.RegisterCheck("history", health.StoreCheck(env.history))
		}
		info := health.NewVersionInfo(Version, GitCommit, BuildDate)

		server := env.collector.NewServer(env.cfg.Telemetry.Metrics.ListenAddress, env.cfg.Telemetry.Metrics.Path,
			func(mux *http.ServeMux) { health.Register(mux, checker, info) })
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				env.logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
		env.logger.Info("serving metrics",
			"address", env.cfg.Telemetry.Metrics.ListenAddress,
			"path", env.cfg.Telemetry.Metrics.Path,
		)
	}

	errCh := make(chan error, 2)

	if poller != nil {
		go func() {
			errCh <- poller.Watch(ctx, func(paths []string) error {
				rv.run(ctx, triggerPull, paths)
				return nil
			})
		}()
	} else {
		watcher, err := watch.NewFileWatcher(watch.Config{
			Path:       root,
			Debounce:   env.cfg.Watch.Debounce,
			Extensions: env.cfg.Watch.Extensions,
		}, env.logger.Slog())
		if err != nil {
			return err
		}
		defer watcher.Stop()

		go func() {
			errCh <- watcher.Watch(ctx, func(paths []string) error {
				rv.run(ctx, triggerChange, paths)
				return nil
			})
		}()
	}

	if _, err := os.Stat(cfgFile); err == nil {
		cfgWatcher, err := watch.NewFileWatcher(watch.Config{
			Path:     cfgFile,
			Debounce: env.cfg.Watch.Debounce,
		}, env.logger.Slog())
		if err != nil {
			return err
		}
		defer cfgWatcher.Stop()

		go func() {
			errCh <- cfgWatcher.Watch(ctx, func([]string) error {
				return rv.reloadConfig()
			})
		}()
	}

	scheduler := watch.NewScheduler(env.cfg.Watch.Schedule, env.logger.Slog())
	if err := scheduler.Start(ctx, func(ctx context.Context) {
		rv.all(ctx, triggerSchedule)
	}); err != nil {
		return err
	}
	defer scheduler.Stop()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// revalidator serializes validation passes from the watcher, the config
// watcher and the scheduler.
type revalidator struct {
	mu     sync.Mutex
	cmd    *cobra.Command
	env    *environment
	root   string
	parser *parser.Parser

	// valid tracks the latest outcome per file for the readiness check.
	valid map[string]bool
	state *health.ValidationState
}

func newRevalidator(cmd *cobra.Command, env *environment, root string) *revalidator {
	return &revalidator{
		cmd:    cmd,
		env:    env,
		root:   root,
		parser: env.newParser(),
		valid:  make(map[string]bool),
		state:  health.NewValidationState(),
	}
}

// all validates every mechanism file under the root.
func (r *revalidator) all(ctx context.Context, trigger string) {
	files, err := watch.Files(r.root, r.env.cfg.Watch.Extensions)
	if err != nil {
		r.env.logger.Error("failed to list mechanism files", "path", r.root, "error", err)
		return
	}
	r.env.collector.SetWatchedFiles(len(files))
	r.run(ctx, trigger, files)
}

// run validates paths and prints the reports. Paths that no longer exist
// are skipped.
func (r *revalidator) run(ctx context.Context, trigger string, paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	files := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			r.env.logger.Info("mechanism file removed", "path", path)
			delete(r.valid, path)
			continue
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		r.recordState()
		return
	}

	ctx, span := r.env.tracer.Start(ctx, "mechconfig.revalidate",
		trace.WithAttributes(tracing.PassAttributes(trigger, len(files))...))
	defer span.End()

	reports := make([]*cli.FileReport, 0, len(files))
	for _, file := range files {
		report, _ := r.env.validateFile(ctx, r.parser, file)
		reports = append(reports, report)
		r.valid[file] = report.Valid
	}
	r.recordState()
	span.SetAttributes(attribute.Int(tracing.AttrErrorCount, cli.Summarize(reports).Errors))

	out := r.cmd.OutOrStdout()
	fmt.Fprintf(out, "[%s] %s: %d file(s)\n", time.Now().Format(time.TimeOnly), trigger, len(files))
	cli.WriteReports(out, reports, cli.TextOptions{Verbose: verbose})
	fmt.Fprintln(out)

	r.env.collector.RecordRevalidation(trigger, len(files))
	r.env.pruneHistory(ctx)
}

// recordState publishes the per-file outcomes to the readiness check.
// Callers hold r.mu.
func (r *revalidator) recordState() {
	failed := 0
	for _, ok := range r.valid {
		if !ok {
			failed++
		}
	}
	r.state.Record(len(r.valid), failed)
}

// reloadConfig re-reads the config file and applies its parser section.
// Changes to other sections are logged and wait for a restart.
func (r *revalidator) reloadConfig() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := config.Reload(cfgFile, r.env.cfg)
	if err != nil {
		return err
	}

	r.env.cfg.Parser = res.Config.Parser
	if len(res.Applied) > 0 {
		r.parser = r.env.newParser()
	}
	r.env.logger.Info("configuration reloaded",
		"config", cfgFile,
		"applied", res.Applied,
		"max_file_size", r.env.cfg.Parser.MaxFileSize,
		"context_lines", r.env.cfg.Parser.ContextLines,
	)
	if len(res.Ignored) > 0 {
		r.env.logger.Warn("configuration changes need a restart",
			"config", cfgFile,
			"sections", res.Ignored,
		)
	}
	return nil
}
