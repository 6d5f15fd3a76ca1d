package config

import "time"

// Config is the root configuration structure for the mechconfig tool.
// It contains the parser limits, the watch loop, the git mechanism source,
// the validation history store and telemetry settings.
type Config struct {
	// Parser contains limits and output settings applied to every parse.
	Parser ParserConfig `yaml:"parser"`

	// Watch contains configuration for the file watcher and the scheduled
	// re-validation loop.
	Watch WatchConfig `yaml:"watch"`

	// Git configures a git repository as the source of mechanism files.
	Git GitConfig `yaml:"git"`

	// History contains configuration for the validation run history store.
	History HistoryConfig `yaml:"history"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ParserConfig contains configuration applied to mechanism parsing.
type ParserConfig struct {
	// MaxFileSize is the largest configuration file, in bytes, that will be
	// read. Larger files are rejected with InvalidFilePath.
	// Default: 10485760 (10MB)
	MaxFileSize int64 `yaml:"max_file_size"`

	// DefaultFormat is the output format used when no --format flag is given.
	// Options: "text", "json"
	// Default: "text"
	DefaultFormat string `yaml:"default_format"`

	// ContextLines is the number of source lines shown around each error.
	// Default: 2
	ContextLines int `yaml:"context_lines"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// Debounce is how long to wait after the last change event before
	// re-validating. Editors often emit several events per save.
	// Default: 100ms
	Debounce time.Duration `yaml:"debounce"`

	// Extensions lists the file extensions that trigger re-validation.
	// Default: [".yaml", ".yml", ".json"]
	Extensions []string `yaml:"extensions"`

	// Schedule is an optional cron expression (standard 5-field syntax)
	// that triggers a full re-validation independently of file events.
	// Empty disables scheduled runs.
	// Example: "*/15 * * * *"
	Schedule string `yaml:"schedule"`
}

// GitConfig configures a git repository holding mechanism files.
type GitConfig struct {
	// Repository is the URL (or local path) of the repository to clone.
	// Empty disables the git source unless --git is given.
	Repository string `yaml:"repository"`

	// Branch is the branch to check out.
	// Default: "" (the remote's default branch)
	Branch string `yaml:"branch"`

	// Path is the directory within the repository that holds mechanism
	// files. Empty means the repository root.
	Path string `yaml:"path"`

	// LocalPath is where the repository is cloned. An existing clone there
	// is reused. Empty clones into a temporary directory that is removed
	// on exit.
	LocalPath string `yaml:"local_path"`

	// Depth limits clone history; 0 clones the full history. Changed-file
	// detection needs the previous commit, so keep Depth at 0 for watch.
	Depth int `yaml:"depth"`

	// Timeout bounds each clone or pull.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`

	// PollInterval is how often watch mode pulls for new commits.
	// Default: 1m
	PollInterval time.Duration `yaml:"poll_interval"`

	// Auth configures repository authentication.
	Auth GitAuthConfig `yaml:"auth"`
}

// GitAuthConfig configures Git authentication.
type GitAuthConfig struct {
	// Type: "token", "ssh", "none"
	// - "token": HTTPS with personal access token
	// - "ssh": SSH with public key
	// - "none": public repositories
	// Default: "none"
	Type string `yaml:"type"`

	// Token for HTTPS authentication.
	// Can be set with MECHCONFIG_GIT_AUTH_TOKEN.
	// Required when Type is "token".
	Token string `yaml:"token"`

	// SSHKeyPath for SSH authentication.
	// Example: "/home/user/.ssh/id_ed25519"
	// Required when Type is "ssh".
	SSHKeyPath string `yaml:"ssh_key_path"`

	// SSHKeyPassphrase for encrypted SSH keys.
	// Optional, leave empty if key is not encrypted.
	SSHKeyPassphrase string `yaml:"ssh_key_passphrase"`
}

// HistoryConfig contains configuration for the validation history store.
type HistoryConfig struct {
	// Enabled controls whether validation runs are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Backend specifies the storage backend for run records.
	// Options: "memory", "sqlite"
	// Default: "memory"
	Backend string `yaml:"backend"`

	// SQLitePath is the database file used by the sqlite backend.
	// Default: "data/mechconfig.db"
	SQLitePath string `yaml:"sqlite_path"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// MaxRuns is the number of most recent runs kept after each prune.
	// Zero keeps every run.
	// Default: 1000
	MaxRuns int `yaml:"max_runs"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains OpenTelemetry tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether the watch command serves Prometheus metrics.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "mechconfig"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "parser"
	Subsystem string `yaml:"subsystem"`

	// ListenAddress is the address the metrics endpoint listens on.
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled controls whether validation runs emit spans.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// Exporter determines the trace exporter to use.
	// Options: "otlp"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the OTLP gRPC collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name in traces.
	// Default: "mechconfig"
	ServiceName string `yaml:"service_name"`

	// OTLP contains OTLP exporter specific configuration.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter configuration.
type OTLPConfig struct {
	// Insecure disables TLS for the OTLP connection.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout is the timeout for OTLP exports.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
