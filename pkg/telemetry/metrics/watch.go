package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/config"
)

// WatchMetrics tracks the watch command's re-validation loop.
//
// Metrics:
//   - mechconfig_parser_revalidations_total: validation passes by trigger
//   - mechconfig_parser_revalidated_files_total: files validated by trigger
//   - mechconfig_parser_watched_files: files currently watched
type WatchMetrics struct {
	revalidationsTotal *prometheus.CounterVec
	filesTotal         *prometheus.CounterVec
	watchedFiles       prometheus.Gauge
}

// NewWatchMetrics creates and registers watch metrics with the provided registry.
func NewWatchMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *WatchMetrics {
	wm := &WatchMetrics{
		revalidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "revalidations_total",
				Help:      "Total number of watch-triggered validation passes",
			},
			[]string{"trigger"},
		),

		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "revalidated_files_total",
				Help:      "Total number of files validated by watch passes",
			},
			[]string{"trigger"},
		),

		watchedFiles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "watched_files",
				Help:      "Current number of watched mechanism files",
			},
		),
	}

	registry.MustRegister(
		wm.revalidationsTotal,
		wm.filesTotal,
		wm.watchedFiles,
	)

	return wm
}

// RecordRevalidation records one validation pass.
func (wm *WatchMetrics) RecordRevalidation(trigger string, files int) {
	wm.revalidationsTotal.WithLabelValues(trigger).Inc()
	wm.filesTotal.WithLabelValues(trigger).Add(float64(files))
}

// SetWatchedFiles sets the watched file gauge.
func (wm *WatchMetrics) SetWatchedFiles(n int) {
	wm.watchedFiles.Set(float64(n))
}
