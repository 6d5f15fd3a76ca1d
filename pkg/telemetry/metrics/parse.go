package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
)

// Parse outcome label values.
const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusFailed  = "failed"

	unknownGeneration = "unknown"
)

// ParseMetrics tracks the outcome of mechanism parses.
//
// Metrics:
//   - mechconfig_parser_documents_parsed_total: parses by generation and status
//   - mechconfig_parser_parse_errors_total: collected errors by kind
//   - mechconfig_parser_parse_duration_seconds: parse duration by generation
//   - mechconfig_parser_entities_parsed_total: entities produced by kind
type ParseMetrics struct {
	documentsTotal *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	entitiesTotal  *prometheus.CounterVec
}

// NewParseMetrics creates and registers parse metrics with the provided registry.
func NewParseMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *ParseMetrics {
	pm := &ParseMetrics{
		documentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "documents_parsed_total",
				Help:      "Total number of mechanism documents parsed",
			},
			[]string{"generation", "status"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_errors_total",
				Help:      "Total number of parse errors by kind",
			},
			[]string{"kind"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Duration of mechanism parses in seconds",
				// Documents parse in well under a second; large legacy sets approach it.
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"generation"},
		),

		entitiesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "entities_parsed_total",
				Help:      "Total number of entities produced by successful parses",
			},
			[]string{"entity"},
		),
	}

	registry.MustRegister(
		pm.documentsTotal,
		pm.errorsTotal,
		pm.duration,
		pm.entitiesTotal,
	)

	return pm
}

// Record records a single parse result.
func (pm *ParseMetrics) Record(result *parser.Result, duration time.Duration) {
	generation := result.Generation.String()
	if generation == "" {
		generation = unknownGeneration
	}

	pm.documentsTotal.WithLabelValues(generation, Status(result)).Inc()
	pm.duration.WithLabelValues(generation).Observe(duration.Seconds())

	for kind, n := range result.Errors.KindCounts() {
		pm.errorsTotal.WithLabelValues(kind.String()).Add(float64(n))
	}

	mech := result.Mechanism
	if mech == nil {
		return
	}
	pm.entitiesTotal.WithLabelValues("species").Add(float64(len(mech.Species)))
	pm.entitiesTotal.WithLabelValues("phases").Add(float64(len(mech.Phases)))
	pm.entitiesTotal.WithLabelValues("reactions").Add(float64(mech.Reactions.Count()))
	pm.entitiesTotal.WithLabelValues("models").Add(float64(mech.Models.Count()))
}

// Status classifies a result: success when a mechanism was produced without
// errors, invalid when errors were collected alongside a mechanism, and
// failed when no mechanism was produced.
func Status(result *parser.Result) string {
	switch {
	case result.Mechanism == nil:
		return StatusFailed
	case result.HasErrors():
		return StatusInvalid
	default:
		return StatusSuccess
	}
}
