package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/cli"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/history"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/telemetry/logging"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/telemetry/metrics"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/telemetry/tracing"
)

// environment holds the services shared by the commands of one invocation.
type environment struct {
	cfg       *config.Config
	logger    *logging.Logger
	collector *metrics.Collector
	tracer    *tracing.Tracer

	// history is nil when run recording is disabled.
	history history.Store
}

// loadEnvironment reads the config file named by --config (falling back to
// defaults when it does not exist) and builds the logger, metrics collector
// and history store. Adjust, when non-nil, may change the config before the
// services are built.
func loadEnvironment(cmd *cobra.Command, adjust func(*config.Config)) (*environment, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if adjust != nil {
		adjust(cfg)
	}

	logger, err := logging.NewFromConfig(cfg.Telemetry.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}

	tracer, err := tracing.New(commandContext(cmd), cfg.Telemetry.Tracing, Version)
	if err != nil {
		return nil, cli.NewConfigError("telemetry.tracing", err.Error())
	}

	env := &environment{
		cfg:       cfg,
		logger:    logger.With("command", cmd.Name()),
		collector: metrics.NewCollector(cfg.Telemetry.Metrics, nil),
		tracer:    tracer,
	}

	if cfg.History.Enabled {
		store, err := history.New(cfg.History)
		if err != nil {
			return nil, fmt.Errorf("failed to open history store: %w", err)
		}
		env.history = store
	}

	env.logger.Debug("environment loaded",
		"config", cfgFile,
		"history", cfg.History.Enabled,
		"metrics", cfg.Telemetry.Metrics.Enabled,
		"tracing", cfg.Telemetry.Tracing.Enabled,
	)
	return env, nil
}

// newParser returns a parser configured from the parser section and
// reporting to the metrics collector.
func (e *environment) newParser() *parser.Parser {
	return parser.NewParser().
		WithLogger(e.logger.Slog()).
		WithObserver(e.collector).
		WithMaxFileSize(e.cfg.Parser.MaxFileSize).
		WithContextLines(e.cfg.Parser.ContextLines)
}

// validateFile parses path and records the run. History failures are
// logged and do not fail the validation.
func (e *environment) validateFile(ctx context.Context, p *parser.Parser, path string) (*cli.FileReport, *parser.Result) {
	runID := uuid.NewString()
	ctx = logging.WithDocument(logging.WithRunID(ctx, runID), path)
	ctx, span := e.tracer.Start(ctx, "mechconfig.validate",
		trace.WithAttributes(tracing.DocumentAttributes(path, runID)...))
	defer span.End()

	start := time.Now()
	result := p.Parse(path)
	elapsed := time.Since(start)
	tracing.RecordResult(span, result)

	report := cli.NewFileReport(path, result, elapsed)
	report.RunID = runID

	attrs := []any{
		"generation", result.Generation,
		"errors", result.Errors.Count(),
		"duration", elapsed,
	}
	if traceID := tracing.TraceID(ctx); traceID != "" {
		attrs = append(attrs, "trace_id", traceID)
	}
	e.logger.DebugContext(ctx, "document validated", attrs...)

	if e.history != nil {
		run := history.NewRun(path, result, elapsed)
		run.ID = runID
		if err := e.history.Record(ctx, run); err != nil {
			e.logger.WarnContext(ctx, "failed to record validation run", "error", err)
		}
	}
	return report, result
}

// pruneHistory trims the store to history.max_runs.
func (e *environment) pruneHistory(ctx context.Context) {
	if e.history == nil || e.cfg.History.MaxRuns <= 0 {
		return
	}
	removed, err := e.history.Prune(ctx, e.cfg.History.MaxRuns)
	if err != nil {
		e.logger.Warn("failed to prune history", "error", err)
		return
	}
	if removed > 0 {
		e.logger.Debug("pruned history", "removed", removed)
	}
}

// commandContext returns the command's context, or a background context
// when the command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Close flushes buffered spans and releases the history store.
func (e *environment) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if err := e.tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush traces: %w", err))
	}
	if e.history != nil {
		if err := e.history.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
