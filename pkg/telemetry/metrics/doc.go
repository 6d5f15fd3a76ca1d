// Package metrics provides Prometheus metrics collection for mechconfig.
//
// # Overview
//
// The Collector records the outcome of every mechanism parse it observes and
// the activity of the watch loop. Metric names are prefixed with the
// configured namespace and subsystem (default "mechconfig_parser_").
//
// # Metrics
//
//   - documents_parsed_total{generation,status}: status is success, invalid
//     (errors collected alongside a mechanism) or failed (no mechanism)
//   - parse_errors_total{kind}: one increment per collected error
//   - parse_duration_seconds{generation}
//   - entities_parsed_total{entity}: species, phases, reactions, models
//   - revalidations_total{trigger}, revalidated_files_total{trigger}
//   - watched_files
//
// # Usage
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	p := parser.NewParser().WithObserver(collector)
//
//	srv := collector.NewServer(cfg.Telemetry.Metrics.ListenAddress, cfg.Telemetry.Metrics.Path)
//	go srv.ListenAndServe()
//
// Recording is a no-op when the configuration has metrics disabled.
package metrics
