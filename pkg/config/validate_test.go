package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{
			name:   "non-positive max file size",
			mutate: func(c *Config) { c.Parser.MaxFileSize = -1 },
			fields: []string{"parser.max_file_size"},
		},
		{
			name:   "unknown output format",
			mutate: func(c *Config) { c.Parser.DefaultFormat = "xml" },
			fields: []string{"parser.default_format"},
		},
		{
			name:   "negative context lines",
			mutate: func(c *Config) { c.Parser.ContextLines = -3 },
			fields: []string{"parser.context_lines"},
		},
		{
			name:   "negative debounce",
			mutate: func(c *Config) { c.Watch.Debounce = -1 },
			fields: []string{"watch.debounce"},
		},
		{
			name:   "extension without dot",
			mutate: func(c *Config) { c.Watch.Extensions = []string{".yaml", "json"} },
			fields: []string{"watch.extensions[1]"},
		},
		{
			name:   "bad cron schedule",
			mutate: func(c *Config) { c.Watch.Schedule = "every minute" },
			fields: []string{"watch.schedule"},
		},
		{
			name:   "valid cron schedule",
			mutate: func(c *Config) { c.Watch.Schedule = "0 */6 * * *" },
		},
		{
			name:   "unknown history backend",
			mutate: func(c *Config) { c.History.Backend = "postgres" },
			fields: []string{"history.backend"},
		},
		{
			name:   "sqlite without path",
			mutate: func(c *Config) { c.History.Backend = "sqlite"; c.History.SQLitePath = "" },
			fields: []string{"history.sqlite_path"},
		},
		{
			name:   "negative max runs",
			mutate: func(c *Config) { c.History.MaxRuns = -1 },
			fields: []string{"history.max_runs"},
		},
		{
			name:   "bad logging level and format",
			mutate: func(c *Config) { c.Telemetry.Logging.Level = "trace"; c.Telemetry.Logging.Format = "xml" },
			fields: []string{"telemetry.logging.level", "telemetry.logging.format"},
		},
		{
			name: "metrics endpoint checked only when enabled",
			mutate: func(c *Config) {
				c.Telemetry.Metrics.Path = "metrics"
				c.Telemetry.Metrics.ListenAddress = "nope"
			},
		},
		{
			name: "bad metrics endpoint",
			mutate: func(c *Config) {
				c.Telemetry.Metrics.Enabled = true
				c.Telemetry.Metrics.Path = "metrics"
				c.Telemetry.Metrics.ListenAddress = "nope"
			},
			fields: []string{"telemetry.metrics.path", "telemetry.metrics.listen_address"},
		},
		{
			name:   "bad git poll settings",
			mutate: func(c *Config) { c.Git.Depth = -1; c.Git.PollInterval = -1 },
			fields: []string{"git.depth", "git.poll_interval"},
		},
		{
			name:   "unknown git auth type",
			mutate: func(c *Config) { c.Git.Auth.Type = "oauth" },
			fields: []string{"git.auth.type"},
		},
		{
			name:   "git token checked only with a repository",
			mutate: func(c *Config) { c.Git.Auth.Type = "token" },
		},
		{
			name: "git token auth without token",
			mutate: func(c *Config) {
				c.Git.Repository = "https://example.com/mechanisms.git"
				c.Git.Auth.Type = "token"
			},
			fields: []string{"git.auth.token"},
		},
		{
			name: "tracing checked only when enabled",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Sampler = "sometimes"
				c.Telemetry.Tracing.Exporter = "zipkin"
			},
		},
		{
			name: "bad tracing sampler and exporter",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Sampler = "sometimes"
				c.Telemetry.Tracing.Exporter = "zipkin"
			},
			fields: []string{"telemetry.tracing.sampler", "telemetry.tracing.exporter"},
		},
		{
			name: "tracing ratio out of range",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Sampler = "ratio"
				c.Telemetry.Tracing.SampleRatio = 1.5
			},
			fields: []string{"telemetry.tracing.sample_ratio"},
		},
		{
			name: "tracing negative timeout",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.OTLP.Timeout = -1
			},
			fields: []string{"telemetry.tracing.otlp.timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			var got []string
			for _, fe := range verr.Errors {
				got = append(got, fe.Field)
			}
			if diff := cmp.Diff(tt.fields, got); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	one := ValidationError{Errors: []FieldError{{Field: "history.backend", Message: "bad"}}}
	if got := one.Error(); got != "configuration validation failed: history.backend: bad" {
		t.Errorf("Error() = %q", got)
	}

	two := ValidationError{Errors: []FieldError{
		{Field: "a", Message: "x"},
		{Field: "b", Message: "y"},
	}}
	if got := two.Error(); !strings.HasPrefix(got, "configuration validation failed with 2 errors:") {
		t.Errorf("Error() = %q", got)
	}

	if got := (ValidationError{}).Error(); got != "configuration validation failed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestApplyDefaults_IdempotentKeepsExtensions(t *testing.T) {
	cfg := &Config{Watch: WatchConfig{Extensions: []string{".json"}}}
	ApplyDefaults(cfg)
	once := *cfg
	ApplyDefaults(cfg)

	if diff := cmp.Diff(once, *cfg); diff != "" {
		t.Errorf("second ApplyDefaults changed config (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{".json"}, cfg.Watch.Extensions); diff != "" {
		t.Errorf("configured extensions overwritten (-want +got):\n%s", diff)
	}
}
