package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
)

// Collector owns every Prometheus metric exported by mechconfig. It
// implements parser.Observer, so registering it on a parser records each
// parse without further wiring.
type Collector struct {
	config   config.MetricsConfig
	registry *prometheus.Registry

	// Parse outcome metrics
	parseMetrics *ParseMetrics

	// Watch loop metrics
	watchMetrics *WatchMetrics
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "mechconfig",
//		Subsystem: "parser",
//	}
//	collector := metrics.NewCollector(cfg, nil)
//	p := parser.NewParser().WithObserver(collector)
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	return &Collector{
		config:       cfg,
		registry:     registry,
		parseMetrics: NewParseMetrics(cfg, registry),
		watchMetrics: NewWatchMetrics(cfg, registry),
	}
}

// Registry returns the registry the collector's metrics are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveParse records the outcome of one parse.
func (c *Collector) ObserveParse(result *parser.Result, duration time.Duration) {
	if !c.config.Enabled || result == nil {
		return
	}
	c.parseMetrics.Record(result, duration)
}

// RecordRevalidation records one watch-triggered validation pass.
//
// Parameters:
//   - trigger: what started the pass ("change", "schedule", "initial")
//   - files: number of files validated in the pass
func (c *Collector) RecordRevalidation(trigger string, files int) {
	if !c.config.Enabled {
		return
	}
	c.watchMetrics.RecordRevalidation(trigger, files)
}

// SetWatchedFiles sets the number of files currently watched.
func (c *Collector) SetWatchedFiles(n int) {
	if !c.config.Enabled {
		return
	}
	c.watchMetrics.SetWatchedFiles(n)
}
