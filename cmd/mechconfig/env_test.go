package main

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/telemetry/tracing"
)

func TestLoadEnvironment_InvalidTracing(t *testing.T) {
	useConfig(t, "telemetry:\n  tracing:\n    enabled: true\n    sampler: sometimes\n")
	cmd, _, _ := newTestCommand(t, "validate")

	if _, err := loadEnvironment(cmd, nil); err == nil {
		t.Fatal("loadEnvironment() error = nil, want config error")
	}
}

func TestEnvironment_ValidateFileSpans(t *testing.T) {
	useConfig(t, "")
	cmd, _, _ := newTestCommand(t, "validate")

	env, err := loadEnvironment(cmd, nil)
	if err != nil {
		t.Fatalf("loadEnvironment() error = %v", err)
	}
	defer env.Close()

	if env.tracer.Enabled() {
		t.Fatal("tracer enabled without tracing config")
	}

	exporter := tracetest.NewInMemoryExporter()
	cfg := config.Default().Telemetry.Tracing
	env.tracer, err = tracing.NewWithExporter(cfg, Version, exporter)
	if err != nil {
		t.Fatalf("NewWithExporter() error = %v", err)
	}

	p := env.newParser()
	good, _ := env.validateFile(context.Background(), p, "testdata/valid/gas.yaml")
	bad, _ := env.validateFile(context.Background(), p, "testdata/invalid.yaml")

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("exported %d spans, want 2", len(spans))
	}

	tests := []struct {
		runID    string
		document string
		status   codes.Code
	}{
		{runID: good.RunID, document: "testdata/valid/gas.yaml", status: codes.Ok},
		{runID: bad.RunID, document: "testdata/invalid.yaml", status: codes.Error},
	}
	for i, tt := range tests {
		span := spans[i]
		if span.Name != "mechconfig.validate" {
			t.Errorf("span[%d].Name = %q, want %q", i, span.Name, "mechconfig.validate")
		}
		if span.Status.Code != tt.status {
			t.Errorf("span[%d].Status = %v, want %v", i, span.Status.Code, tt.status)
		}
		attrs := make(map[string]string)
		for _, kv := range span.Attributes {
			attrs[string(kv.Key)] = kv.Value.Emit()
		}
		if attrs[tracing.AttrRunID] != tt.runID {
			t.Errorf("span[%d] run ID = %q, want %q", i, attrs[tracing.AttrRunID], tt.runID)
		}
		if attrs[tracing.AttrDocument] != tt.document {
			t.Errorf("span[%d] document = %q, want %q", i, attrs[tracing.AttrDocument], tt.document)
		}
	}
}
