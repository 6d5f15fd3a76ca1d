// Package config provides configuration management for the mechconfig tool.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. Configuration covers the
// tool around the parser, never the parse itself: the same mechanism file
// yields the same result under every configuration.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("mechconfig.yaml")
//	cfg, err := config.LoadConfigWithEnvOverrides("mechconfig.yaml")
//	cfg, err := config.LoadOrDefault("mechconfig.yaml") // missing file -> defaults
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention MECHCONFIG_SECTION_FIELD.
// For example:
//
//   - MECHCONFIG_PARSER_MAX_FILE_SIZE overrides parser.max_file_size
//   - MECHCONFIG_HISTORY_BACKEND overrides history.backend
//   - MECHCONFIG_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	parser:
//	  max_file_size: 10485760
//	  default_format: text
//
//	watch:
//	  debounce: 250ms
//	  schedule: "*/15 * * * *"
//
//	git:
//	  repository: https://github.com/NCAR/mechanisms.git
//	  path: mechanisms
//	  auth:
//	    type: token
//
//	history:
//	  enabled: true
//	  backend: sqlite
//	  sqlite_path: data/mechconfig.db
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: true
//	    listen_address: 127.0.0.1:9090
//
// # Reloading
//
// A running watch re-reads its file with Reload. Only the parser section is
// applied; changes to the other sections are reported as needing a restart:
//
//	res, err := config.Reload("mechconfig.yaml", running)
//	// res.Applied == ["parser"], res.Ignored == ["history"]
package config
