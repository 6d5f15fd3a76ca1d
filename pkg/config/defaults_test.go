package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(*testing.T, *Config)
	}{
		{
			name:  "empty config gets all defaults",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Parser.MaxFileSize != DefaultMaxFileSize {
					t.Errorf("expected max file size %d, got %d", DefaultMaxFileSize, cfg.Parser.MaxFileSize)
				}
				if cfg.Parser.DefaultFormat != DefaultOutputFormat {
					t.Errorf("expected default format %q, got %q", DefaultOutputFormat, cfg.Parser.DefaultFormat)
				}
				if cfg.Watch.Debounce != DefaultWatchDebounce {
					t.Errorf("expected debounce %v, got %v", DefaultWatchDebounce, cfg.Watch.Debounce)
				}
				if diff := cmp.Diff(DefaultWatchExtensions, cfg.Watch.Extensions); diff != "" {
					t.Errorf("watch extensions mismatch (-want +got):\n%s", diff)
				}
				if cfg.Git.Timeout != DefaultGitTimeout {
					t.Errorf("expected git timeout %v, got %v", DefaultGitTimeout, cfg.Git.Timeout)
				}
				if cfg.Git.PollInterval != DefaultGitPollInterval {
					t.Errorf("expected git poll interval %v, got %v", DefaultGitPollInterval, cfg.Git.PollInterval)
				}
				if cfg.Git.Auth.Type != DefaultGitAuthType {
					t.Errorf("expected git auth type %q, got %q", DefaultGitAuthType, cfg.Git.Auth.Type)
				}
				if cfg.History.Backend != DefaultHistoryBackend {
					t.Errorf("expected history backend %q, got %q", DefaultHistoryBackend, cfg.History.Backend)
				}
				if cfg.History.MaxRuns != DefaultHistoryMaxRuns {
					t.Errorf("expected max runs %d, got %d", DefaultHistoryMaxRuns, cfg.History.MaxRuns)
				}
				if cfg.Telemetry.Logging.Level != DefaultLoggingLevel {
					t.Errorf("expected logging level %q, got %q", DefaultLoggingLevel, cfg.Telemetry.Logging.Level)
				}
				if cfg.Telemetry.Metrics.Path != DefaultPrometheusPath {
					t.Errorf("expected prometheus path %q, got %q", DefaultPrometheusPath, cfg.Telemetry.Metrics.Path)
				}
				if cfg.Telemetry.Tracing.Sampler != DefaultTracingSampler {
					t.Errorf("expected sampler %q, got %q", DefaultTracingSampler, cfg.Telemetry.Tracing.Sampler)
				}
				if cfg.Telemetry.Tracing.OTLP.Timeout != DefaultOTLPTimeout {
					t.Errorf("expected otlp timeout %v, got %v", DefaultOTLPTimeout, cfg.Telemetry.Tracing.OTLP.Timeout)
				}
			},
		},
		{
			name: "existing values are preserved",
			input: Config{
				Parser: ParserConfig{MaxFileSize: 1024, DefaultFormat: "json"},
				Watch:  WatchConfig{Debounce: time.Second, Extensions: []string{".yaml"}},
				Git:    GitConfig{PollInterval: 5 * time.Second, Auth: GitAuthConfig{Type: "token"}},
				History: HistoryConfig{
					Backend: "sqlite",
					MaxRuns: 10,
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Parser.MaxFileSize != 1024 {
					t.Errorf("expected max file size 1024, got %d", cfg.Parser.MaxFileSize)
				}
				if cfg.Parser.DefaultFormat != "json" {
					t.Errorf("expected default format %q, got %q", "json", cfg.Parser.DefaultFormat)
				}
				if cfg.Watch.Debounce != time.Second {
					t.Errorf("expected debounce 1s, got %v", cfg.Watch.Debounce)
				}
				if diff := cmp.Diff([]string{".yaml"}, cfg.Watch.Extensions); diff != "" {
					t.Errorf("watch extensions mismatch (-want +got):\n%s", diff)
				}
				if cfg.Git.PollInterval != 5*time.Second {
					t.Errorf("expected git poll interval 5s, got %v", cfg.Git.PollInterval)
				}
				if cfg.Git.Auth.Type != "token" {
					t.Errorf("expected git auth type %q, got %q", "token", cfg.Git.Auth.Type)
				}
				if cfg.History.Backend != "sqlite" {
					t.Errorf("expected history backend %q, got %q", "sqlite", cfg.History.Backend)
				}
				if cfg.History.MaxRuns != 10 {
					t.Errorf("expected max runs 10, got %d", cfg.History.MaxRuns)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			ApplyDefaults(&cfg)
			tt.check(t, &cfg)
		})
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	first := Default()
	second := Default()
	ApplyDefaults(second)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ApplyDefaults not idempotent (-first +second):\n%s", diff)
	}
}

func TestApplyDefaults_ExtensionsNotShared(t *testing.T) {
	cfg := Default()
	cfg.Watch.Extensions[0] = ".toml"

	if DefaultWatchExtensions[0] != ".yaml" {
		t.Errorf("DefaultWatchExtensions[0] = %q, want %q", DefaultWatchExtensions[0], ".yaml")
	}
}
