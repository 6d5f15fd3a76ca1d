package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
)

// Attribute keys use the "mechconfig.*" namespace.
const (
	AttrDocument   = "mechconfig.document"
	AttrRunID      = "mechconfig.run_id"
	AttrGeneration = "mechconfig.generation"
	AttrValid      = "mechconfig.valid"
	AttrErrorCount = "mechconfig.errors"

	AttrSpecies   = "mechconfig.species"
	AttrPhases    = "mechconfig.phases"
	AttrReactions = "mechconfig.reactions"
	AttrModels    = "mechconfig.models"

	AttrTrigger = "mechconfig.watch.trigger"
	AttrFiles   = "mechconfig.watch.files"

	AttrErrorKind   = "mechconfig.error.kind"
	AttrErrorFile   = "mechconfig.error.file"
	AttrErrorLine   = "mechconfig.error.line"
	AttrErrorColumn = "mechconfig.error.column"
)

// EventParseError is the span event added for every reported parse error.
const EventParseError = "parse_error"

// DocumentAttributes returns the attributes identifying one validation run.
func DocumentAttributes(path, runID string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String(AttrDocument, path)}
	if runID != "" {
		attrs = append(attrs, attribute.String(AttrRunID, runID))
	}
	return attrs
}

// PassAttributes returns the attributes of one watch revalidation pass.
func PassAttributes(trigger string, files int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrTrigger, trigger),
		attribute.Int(AttrFiles, files),
	}
}

// ResultAttributes returns the outcome attributes of a parse. Entity
// counts are only present for a successful parse.
func ResultAttributes(result *parser.Result) []attribute.KeyValue {
	if result == nil {
		return []attribute.KeyValue{attribute.Bool(AttrValid, false)}
	}

	attrs := []attribute.KeyValue{
		attribute.Bool(AttrValid, result.Successful()),
		attribute.Int(AttrErrorCount, result.Errors.Count()),
	}
	if result.Generation != "" {
		attrs = append(attrs, attribute.String(AttrGeneration, string(result.Generation)))
	}
	if m := result.Mechanism; m != nil && result.Successful() {
		attrs = append(attrs,
			attribute.Int(AttrSpecies, len(m.Species)),
			attribute.Int(AttrPhases, len(m.Phases)),
			attribute.Int(AttrReactions, m.Reactions.Count()),
			attribute.Int(AttrModels, m.Models.Count()),
		)
	}
	return attrs
}

// RecordResult annotates span with the parse outcome. Each reported error
// becomes a parse_error event and a failed parse sets the span status to
// Error.
func RecordResult(span trace.Span, result *parser.Result) {
	span.SetAttributes(ResultAttributes(result)...)

	if result == nil {
		span.SetStatus(codes.Error, "no parse result")
		return
	}

	if result.Errors != nil {
		for _, e := range result.Errors.Errors {
			span.AddEvent(EventParseError, trace.WithAttributes(
				attribute.String(AttrErrorKind, e.Kind.String()),
				attribute.String(AttrErrorFile, e.Location.File),
				attribute.Int(AttrErrorLine, e.Location.Line),
				attribute.Int(AttrErrorColumn, e.Location.Column),
				attribute.String("message", e.Message),
			))
		}
	}

	SetStatus(span, result.Err())
}

// SetError records err on the span without changing its status.
func SetError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
}

// SetStatus sets the span status based on an error.
// If err is nil, status is set to OK, otherwise to Error.
func SetStatus(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
