package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "history.backend").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateParser(&cfg.Parser)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)
	errs = append(errs, validateGit(&cfg.Git)...)
	errs = append(errs, validateHistory(&cfg.History)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateParser validates parser configuration.
func validateParser(cfg *ParserConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, FieldError{
			Field:   "parser.max_file_size",
			Message: "max file size must be positive",
		})
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.DefaultFormat] {
		errs = append(errs, FieldError{
			Field:   "parser.default_format",
			Message: fmt.Sprintf("invalid output format %q: must be 'text' or 'json'", cfg.DefaultFormat),
		})
	}

	if cfg.ContextLines < 0 {
		errs = append(errs, FieldError{
			Field:   "parser.context_lines",
			Message: "context lines cannot be negative",
		})
	}

	return errs
}

// validateWatch validates watch configuration.
func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.Debounce < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce",
			Message: "debounce cannot be negative",
		})
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("invalid extension %q: must start with '.'", ext),
			})
		}
	}

	if cfg.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "watch.schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.Schedule, err),
			})
		}
	}

	return errs
}

// validateGit validates the git source configuration. The auth settings
// are only checked when a repository is configured.
func validateGit(cfg *GitConfig) []FieldError {
	var errs []FieldError

	if cfg.Depth < 0 {
		errs = append(errs, FieldError{
			Field:   "git.depth",
			Message: "depth cannot be negative",
		})
	}
	if cfg.Timeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "git.timeout",
			Message: "timeout must be positive",
		})
	}
	if cfg.PollInterval <= 0 {
		errs = append(errs, FieldError{
			Field:   "git.poll_interval",
			Message: "poll interval must be positive",
		})
	}

	switch cfg.Auth.Type {
	case "none":
	case "token":
		if cfg.Repository != "" && cfg.Auth.Token == "" {
			errs = append(errs, FieldError{
				Field:   "git.auth.token",
				Message: "token is required when auth type is 'token'",
			})
		}
	case "ssh":
		if cfg.Repository != "" && cfg.Auth.SSHKeyPath == "" {
			errs = append(errs, FieldError{
				Field:   "git.auth.ssh_key_path",
				Message: "ssh key path is required when auth type is 'ssh'",
			})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "git.auth.type",
			Message: fmt.Sprintf("invalid auth type %q: must be 'none', 'token', or 'ssh'", cfg.Auth.Type),
		})
	}

	return errs
}

// validateHistory validates history configuration.
func validateHistory(cfg *HistoryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Backend {
	case "memory":
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, FieldError{
				Field:   "history.sqlite_path",
				Message: "sqlite path is required when backend is 'sqlite'",
			})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "history.backend",
			Message: fmt.Sprintf("invalid backend %q: must be 'memory' or 'sqlite'", cfg.Backend),
		})
	}

	if cfg.BusyTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "history.busy_timeout",
			Message: "busy timeout cannot be negative",
		})
	}

	if cfg.MaxRuns < 0 {
		errs = append(errs, FieldError{
			Field:   "history.max_runs",
			Message: "max runs cannot be negative",
		})
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if cfg.Logging.Level == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	// Validate logging format
	validFormats := map[string]bool{"json": true, "text": true, "console": true}
	if cfg.Logging.Format == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json', 'text', or 'console'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Path == "" || cfg.Metrics.Path[0] != '/' {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: "metrics path must start with /",
			})
		}
		if _, _, err := net.SplitHostPort(cfg.Metrics.ListenAddress); err != nil {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.listen_address",
				Message: fmt.Sprintf("invalid listen address %q: %v", cfg.Metrics.ListenAddress, err),
			})
		}
	}

	if cfg.Tracing.Enabled {
		errs = append(errs, validateTracing(&cfg.Tracing)...)
	}

	return errs
}

// validateTracing validates tracing configuration.
func validateTracing(cfg *TracingConfig) []FieldError {
	var errs []FieldError

	switch cfg.Sampler {
	case "always", "never":
	case "ratio":
		if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sample_ratio",
				Message: fmt.Sprintf("sample ratio %g must be between 0.0 and 1.0", cfg.SampleRatio),
			})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', or 'ratio'", cfg.Sampler),
		})
	}

	if cfg.Exporter != "otlp" {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.exporter",
			Message: fmt.Sprintf("invalid exporter %q: must be 'otlp'", cfg.Exporter),
		})
	}

	if cfg.Endpoint == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.endpoint",
			Message: "endpoint is required when tracing is enabled",
		})
	}

	if cfg.OTLP.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.otlp.timeout",
			Message: "timeout cannot be negative",
		})
	}

	return errs
}
