package tracing

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
)

const validDoc = `
version: 1.0.0
species:
  - name: A
  - name: B
phases:
  - name: gas
    species: [A, B]
reactions:
  - type: ARRHENIUS
    gas phase: gas
    reactants: [{name: A}]
    products: [{name: B}]
`

const invalidDoc = `
version: 1.0.0
species:
  - name: A
phases:
  - name: gas
    species: [A]
reactions:
  - type: PHOTOLYSIS
    gas phase: gas
    reactants: [{name: A}]
    products: [{name: B}]
`

func testConfig() config.TracingConfig {
	cfg := config.Default().Telemetry.Tracing
	cfg.Enabled = true
	return cfg
}

func newTestTracer(t *testing.T) (*Tracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tracer, err := NewWithExporter(testConfig(), "test", exporter)
	if err != nil {
		t.Fatalf("NewWithExporter() error = %v", err)
	}
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })
	return tracer, exporter
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.TracingConfig)
		enabled bool
		wantErr bool
	}{
		{
			name:    "disabled tracing",
			mutate:  func(c *config.TracingConfig) { c.Enabled = false },
			enabled: false,
		},
		{
			name: "otlp exporter",
			mutate: func(c *config.TracingConfig) {
				c.OTLP.Insecure = true
				c.OTLP.Timeout = time.Second
			},
			enabled: true,
		},
		{
			name:    "ratio sampler",
			mutate:  func(c *config.TracingConfig) { c.Sampler = SamplerRatio; c.SampleRatio = 0.5 },
			enabled: true,
		},
		{
			name:    "unsupported exporter",
			mutate:  func(c *config.TracingConfig) { c.Exporter = "zipkin" },
			wantErr: true,
		},
		{
			name:    "invalid sampler",
			mutate:  func(c *config.TracingConfig) { c.Sampler = "sometimes" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			tracer, err := New(context.Background(), cfg, "test")
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer tracer.Shutdown(context.Background())

			if tracer.Enabled() != tt.enabled {
				t.Errorf("Enabled() = %v, want %v", tracer.Enabled(), tt.enabled)
			}
		})
	}
}

func TestNoop(t *testing.T) {
	tracer := Noop()
	if tracer.Enabled() {
		t.Error("Noop().Enabled() = true, want false")
	}

	ctx, span := tracer.Start(context.Background(), "noop")
	span.End()

	if id := TraceID(ctx); id != "" {
		t.Errorf("TraceID() = %q, want empty", id)
	}
	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestTracer_StartExportsSpan(t *testing.T) {
	tracer, exporter := newTestTracer(t)

	ctx, span := tracer.Start(context.Background(), "mechconfig.validate",
		trace.WithAttributes(DocumentAttributes("gas.yaml", "run-1")...))
	if TraceID(ctx) == "" || SpanID(ctx) == "" {
		t.Errorf("TraceID() = %q, SpanID() = %q, want both set", TraceID(ctx), SpanID(ctx))
	}
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}
	if spans[0].Name != "mechconfig.validate" {
		t.Errorf("Name = %q, want %q", spans[0].Name, "mechconfig.validate")
	}
	attrs := attrMap(spans[0].Attributes)
	if got := attrs[AttrDocument].AsString(); got != "gas.yaml" {
		t.Errorf("%s = %q, want %q", AttrDocument, got, "gas.yaml")
	}
	if got := attrs[AttrRunID].AsString(); got != "run-1" {
		t.Errorf("%s = %q, want %q", AttrRunID, got, "run-1")
	}
}

func TestTracer_ChildSpanSharesTrace(t *testing.T) {
	tracer, exporter := newTestTracer(t)

	ctx, pass := tracer.Start(context.Background(), "mechconfig.revalidate",
		trace.WithAttributes(PassAttributes("change", 2)...))
	_, child := tracer.Start(ctx, "mechconfig.validate")
	child.End()
	pass.End()

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("exported %d spans, want 2", len(spans))
	}
	if spans[0].Parent.SpanID() != spans[1].SpanContext.SpanID() {
		t.Errorf("child parent = %s, want %s", spans[0].Parent.SpanID(), spans[1].SpanContext.SpanID())
	}
	if spans[0].SpanContext.TraceID() != spans[1].SpanContext.TraceID() {
		t.Error("child and parent have different trace IDs")
	}
}

func TestRecordResult(t *testing.T) {
	p := parser.NewParser()

	t.Run("valid document", func(t *testing.T) {
		tracer, exporter := newTestTracer(t)

		_, span := tracer.Start(context.Background(), "mechconfig.validate")
		RecordResult(span, p.ParseBytes([]byte(validDoc), "good.yaml"))
		span.End()

		got := exporter.GetSpans()[0]
		if got.Status.Code != codes.Ok {
			t.Errorf("Status = %v, want Ok", got.Status.Code)
		}
		attrs := attrMap(got.Attributes)
		if !attrs[AttrValid].AsBool() {
			t.Errorf("%s = false, want true", AttrValid)
		}
		if g := attrs[AttrGeneration].AsString(); g != "v1" {
			t.Errorf("%s = %q, want %q", AttrGeneration, g, "v1")
		}
		if n := attrs[AttrSpecies].AsInt64(); n != 2 {
			t.Errorf("%s = %d, want 2", AttrSpecies, n)
		}
		if n := attrs[AttrReactions].AsInt64(); n != 1 {
			t.Errorf("%s = %d, want 1", AttrReactions, n)
		}
		if len(got.Events) != 0 {
			t.Errorf("got %d events, want 0", len(got.Events))
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		tracer, exporter := newTestTracer(t)

		_, span := tracer.Start(context.Background(), "mechconfig.validate")
		RecordResult(span, p.ParseBytes([]byte(invalidDoc), "bad.yaml"))
		span.End()

		got := exporter.GetSpans()[0]
		if got.Status.Code != codes.Error {
			t.Errorf("Status = %v, want Error", got.Status.Code)
		}
		attrs := attrMap(got.Attributes)
		if attrs[AttrValid].AsBool() {
			t.Errorf("%s = true, want false", AttrValid)
		}
		if _, ok := attrs[AttrSpecies]; ok {
			t.Errorf("%s set on a failed parse", AttrSpecies)
		}
		if len(got.Events) == 0 {
			t.Fatal("no parse_error events recorded")
		}
		event := got.Events[0]
		if event.Name != EventParseError {
			t.Errorf("event name = %q, want %q", event.Name, EventParseError)
		}
		if kind := attrMap(event.Attributes)[AttrErrorKind].AsString(); kind != "ReactionRequiresUnknownSpecies" {
			t.Errorf("%s = %q, want %q", AttrErrorKind, kind, "ReactionRequiresUnknownSpecies")
		}
	})

	t.Run("nil result", func(t *testing.T) {
		tracer, exporter := newTestTracer(t)

		_, span := tracer.Start(context.Background(), "mechconfig.validate")
		RecordResult(span, nil)
		span.End()

		if code := exporter.GetSpans()[0].Status.Code; code != codes.Error {
			t.Errorf("Status = %v, want Error", code)
		}
	})
}
