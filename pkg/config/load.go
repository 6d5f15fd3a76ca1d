package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "MECHCONFIG_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use LoadConfigWithEnvOverrides
// for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention MECHCONFIG_SECTION_FIELD (e.g., MECHCONFIG_HISTORY_BACKEND).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like LoadConfigWithEnvOverrides, except that a
// missing file yields the default configuration (with environment
// overrides) instead of an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfigWithEnvOverrides(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// ReloadResult describes a configuration file re-read by a running watch.
type ReloadResult struct {
	// Config is the running configuration with the reloadable sections
	// replaced by the values read from disk.
	Config *Config

	// Applied lists the reloadable sections whose values changed.
	Applied []string

	// Ignored lists the sections that changed on disk but only take
	// effect after a restart.
	Ignored []string
}

// Reload re-reads path (with environment overrides) for a running watch.
// Only the parser section can change at runtime: the watcher, git source,
// history store and telemetry are built once at startup, so changes to
// those sections are reported in Ignored and current's values are kept.
// current is not modified. A file that fails to load or validate returns an
// error and the caller keeps its configuration.
func Reload(path string, current *Config) (*ReloadResult, error) {
	loaded, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, fmt.Errorf("failed to reload configuration: %w", err)
	}

	next := *current
	res := &ReloadResult{Config: &next}

	if !reflect.DeepEqual(current.Parser, loaded.Parser) {
		next.Parser = loaded.Parser
		res.Applied = append(res.Applied, "parser")
	}

	fixed := []struct {
		name      string
		was, read any
	}{
		{"watch", current.Watch, loaded.Watch},
		{"git", current.Git, loaded.Git},
		{"history", current.History, loaded.History},
		{"telemetry", current.Telemetry, loaded.Telemetry},
	}
	for _, s := range fixed {
		if !reflect.DeepEqual(s.was, s.read) {
			res.Ignored = append(res.Ignored, s.name)
		}
	}

	return res, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format MECHCONFIG_SECTION_FIELD.
// Values that fail to parse are ignored.
func applyEnvOverrides(cfg *Config) {
	// Parser overrides
	if val := env("PARSER_MAX_FILE_SIZE"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Parser.MaxFileSize = i
		}
	}
	if val := env("PARSER_DEFAULT_FORMAT"); val != "" {
		cfg.Parser.DefaultFormat = val
	}
	if val := env("PARSER_CONTEXT_LINES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Parser.ContextLines = i
		}
	}

	// Watch overrides
	if val := env("WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.Debounce = d
		}
	}
	if val := env("WATCH_EXTENSIONS"); val != "" {
		cfg.Watch.Extensions = splitList(val)
	}
	if val := env("WATCH_SCHEDULE"); val != "" {
		cfg.Watch.Schedule = val
	}

	// Git overrides
	if val := env("GIT_REPOSITORY"); val != "" {
		cfg.Git.Repository = val
	}
	if val := env("GIT_BRANCH"); val != "" {
		cfg.Git.Branch = val
	}
	if val := env("GIT_AUTH_TOKEN"); val != "" {
		cfg.Git.Auth.Token = val
	}

	// History overrides
	if val := env("HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := env("HISTORY_BACKEND"); val != "" {
		cfg.History.Backend = val
	}
	if val := env("HISTORY_SQLITE_PATH"); val != "" {
		cfg.History.SQLitePath = val
	}
	if val := env("HISTORY_MAX_RUNS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.MaxRuns = i
		}
	}

	// Telemetry overrides
	if val := env("TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := env("TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := env("TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := env("TELEMETRY_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
	if val := env("TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
}

func env(name string) string {
	return os.Getenv(EnvPrefix + name)
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
