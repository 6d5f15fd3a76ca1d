package tracing

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestCreateSampler(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		ratio    float64
		wantErr  bool
	}{
		{name: "always sampler", strategy: SamplerAlways},
		{name: "empty defaults to always", strategy: ""},
		{name: "never sampler", strategy: SamplerNever},
		{name: "ratio sampler - 0%", strategy: SamplerRatio, ratio: 0.0},
		{name: "ratio sampler - 50%", strategy: SamplerRatio, ratio: 0.5},
		{name: "ratio sampler - 100%", strategy: SamplerRatio, ratio: 1.0},
		{name: "ratio sampler - invalid negative", strategy: SamplerRatio, ratio: -0.1, wantErr: true},
		{name: "ratio sampler - invalid > 1", strategy: SamplerRatio, ratio: 1.5, wantErr: true},
		{name: "unknown strategy", strategy: "unknown", ratio: 0.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler, err := createSampler(tt.strategy, tt.ratio)
			if (err != nil) != tt.wantErr {
				t.Errorf("createSampler() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && sampler == nil {
				t.Error("createSampler() returned nil sampler without error")
			}
		})
	}
}

func TestCreateSampler_Decisions(t *testing.T) {
	traceID := trace.TraceID{0x01, 0x02, 0x03, 0x04}

	tests := []struct {
		strategy string
		ratio    float64
		want     sdktrace.SamplingDecision
	}{
		{strategy: SamplerAlways, want: sdktrace.RecordAndSample},
		{strategy: SamplerNever, want: sdktrace.Drop},
		{strategy: SamplerRatio, ratio: 0, want: sdktrace.Drop},
		{strategy: SamplerRatio, ratio: 1, want: sdktrace.RecordAndSample},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			sampler, err := createSampler(tt.strategy, tt.ratio)
			if err != nil {
				t.Fatalf("createSampler() error = %v", err)
			}
			got := sampler.ShouldSample(sdktrace.SamplingParameters{
				ParentContext: context.Background(),
				TraceID:       traceID,
				Name:          "mechconfig.validate",
			})
			if got.Decision != tt.want {
				t.Errorf("Decision = %v, want %v", got.Decision, tt.want)
			}
		})
	}
}
