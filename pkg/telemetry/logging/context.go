package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for validation run IDs.
	RunIDKey contextKey = "run_id"

	// CommandKey is the context key for the CLI command name.
	CommandKey contextKey = "command"

	// DocumentKey is the context key for the mechanism document path.
	DocumentKey contextKey = "document"
)

// WithRunID adds a validation run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithCommand adds a command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

// GetCommand retrieves the command name from the context.
func GetCommand(ctx context.Context) string {
	if command, ok := ctx.Value(CommandKey).(string); ok {
		return command
	}
	return ""
}

// WithDocument adds a document path to the context.
func WithDocument(ctx context.Context, document string) context.Context {
	return context.WithValue(ctx, DocumentKey, document)
}

// GetDocument retrieves the document path from the context.
func GetDocument(ctx context.Context) string {
	if document, ok := ctx.Value(DocumentKey).(string); ok {
		return document
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, "run_id", runID)
	}
	if command := GetCommand(ctx); command != "" {
		fields = append(fields, "command", command)
	}
	if document := GetDocument(ctx); document != "" {
		fields = append(fields, "document", document)
	}

	return fields
}
