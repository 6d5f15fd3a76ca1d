// Package tracing provides OpenTelemetry spans for mechanism validation.
//
// Every validated document gets a "mechconfig.validate" span carrying the
// document path, run ID, detected generation and entity counts. Each
// reported parse error is attached to the span as a parse_error event, so
// a trace backend shows what failed and where without the CLI output.
// Watch passes open a parent span that groups the files they revalidate.
//
// Spans are exported over OTLP gRPC:
//
//	telemetry:
//	  tracing:
//	    enabled: true
//	    endpoint: otel-collector:4317
//	    sampler: ratio
//	    sample_ratio: 0.25
//	    otlp:
//	      insecure: true
//
// When tracing is disabled New returns a noop tracer and no exporter or
// gRPC connection is created.
//
// # Usage
//
//	tracer, err := tracing.New(ctx, cfg.Telemetry.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "mechconfig.validate",
//	    trace.WithAttributes(tracing.DocumentAttributes(path, runID)...))
//	result := p.Parse(path)
//	tracing.RecordResult(span, result)
//	span.End()
package tracing
