package config

import "time"

// Default values for configuration fields.
const (
	// Parser defaults
	DefaultMaxFileSize   = int64(10 * 1024 * 1024) // 10MB
	DefaultOutputFormat  = "text"
	DefaultContextLines  = 2
	DefaultWatchDebounce = 100 * time.Millisecond

	// Git defaults
	DefaultGitTimeout      = 30 * time.Second
	DefaultGitPollInterval = time.Minute
	DefaultGitAuthType     = "none"

	// History defaults
	DefaultHistoryBackend     = "memory"
	DefaultHistorySQLitePath  = "data/mechconfig.db"
	DefaultHistoryBusyTimeout = 5 * time.Second
	DefaultHistoryMaxRuns     = 1000

	// Telemetry defaults
	DefaultLoggingLevel         = "info"
	DefaultLoggingFormat        = "text"
	DefaultMetricsNamespace     = "mechconfig"
	DefaultMetricsSubsystem     = "parser"
	DefaultMetricsListenAddress = "127.0.0.1:9090"
	DefaultPrometheusPath       = "/metrics"
	DefaultTracingSampler       = "always"
	DefaultTracingSampleRatio   = 1.0
	DefaultTracingExporter      = "otlp"
	DefaultTracingEndpoint      = "localhost:4317"
	DefaultTracingServiceName   = "mechconfig"
	DefaultOTLPTimeout          = 10 * time.Second
)

// DefaultWatchExtensions are the file extensions watched when none are configured.
var DefaultWatchExtensions = []string{".yaml", ".yml", ".json"}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Parser defaults
	if cfg.Parser.MaxFileSize == 0 {
		cfg.Parser.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Parser.DefaultFormat == "" {
		cfg.Parser.DefaultFormat = DefaultOutputFormat
	}
	if cfg.Parser.ContextLines == 0 {
		cfg.Parser.ContextLines = DefaultContextLines
	}

	// Watch defaults
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}

	// Git defaults
	if cfg.Git.Timeout == 0 {
		cfg.Git.Timeout = DefaultGitTimeout
	}
	if cfg.Git.PollInterval == 0 {
		cfg.Git.PollInterval = DefaultGitPollInterval
	}
	if cfg.Git.Auth.Type == "" {
		cfg.Git.Auth.Type = DefaultGitAuthType
	}

	// History defaults
	if cfg.History.Backend == "" {
		cfg.History.Backend = DefaultHistoryBackend
	}
	if cfg.History.SQLitePath == "" {
		cfg.History.SQLitePath = DefaultHistorySQLitePath
	}
	if cfg.History.BusyTimeout == 0 {
		cfg.History.BusyTimeout = DefaultHistoryBusyTimeout
	}
	if cfg.History.MaxRuns == 0 {
		cfg.History.MaxRuns = DefaultHistoryMaxRuns
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultPrometheusPath
	}
	applyTracingDefaults(&cfg.Telemetry.Tracing)
}

func applyTracingDefaults(cfg *TracingConfig) {
	if cfg.Sampler == "" {
		cfg.Sampler = DefaultTracingSampler
	}
	if cfg.SampleRatio == 0 {
		cfg.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Exporter == "" {
		cfg.Exporter = DefaultTracingExporter
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultTracingEndpoint
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultTracingServiceName
	}
	if cfg.OTLP.Timeout == 0 {
		cfg.OTLP.Timeout = DefaultOTLPTimeout
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
