// Package logging provides structured logging for the mechconfig tool.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Context-aware logging with run IDs, command names, and document paths
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logger.Info("validation finished",
//	    "document", "mechanism.yaml",
//	    "errors", 0,
//	)
//
//	// Attach run metadata through the context
//	ctx = logging.WithRunID(ctx, runID)
//	logger.WithContext(ctx).Info("parsing") // includes run_id automatically
//
// The parser accepts a *slog.Logger; pass logger.Slog() to it.
package logging
