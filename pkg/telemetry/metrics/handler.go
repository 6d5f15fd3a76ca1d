package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
//
// This handler exposes all registered metrics in the standard Prometheus
// exposition format. It should be mounted at the path specified in the
// MetricsConfig (typically "/metrics").
//
// Example:
//
//	collector := metrics.NewCollector(cfg, nil)
//	http.Handle("/metrics", collector.Handler())
//	http.ListenAndServe("127.0.0.1:9090", nil)
//
// The handler uses the promhttp.Handler with default options, which includes:
//   - Automatic metric collection on each scrape
//   - Compression support (gzip)
//   - Timeout handling
//   - Error reporting
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(
		c.registry,
		promhttp.HandlerOpts{
			// Enable OpenMetrics encoding (preferred over Prometheus text format)
			EnableOpenMetrics: true,

			// Timeout for collecting metrics
			Timeout: 0, // No timeout (use server's timeout)

			// Maximum number of requests that can be served concurrently
			MaxRequestsInFlight: 0, // Unlimited

			// Error handling
			ErrorHandling: promhttp.ContinueOnError,

			// Error logger (nil = use default)
			ErrorLog: nil,
		},
	)
}

// HandlerWithOptions returns an HTTP handler with custom options.
//
// This allows for more control over the handler behavior, such as:
//   - Setting a timeout for metric collection
//   - Limiting concurrent scrape requests
//   - Custom error handling
//
// Example:
//
//	handler := collector.HandlerWithOptions(promhttp.HandlerOpts{
//		Timeout: 10 * time.Second,
//		MaxRequestsInFlight: 5,
//		ErrorHandling: promhttp.HTTPErrorOnError,
//	})
//	http.Handle("/metrics", handler)
func (c *Collector) HandlerWithOptions(opts promhttp.HandlerOpts) http.Handler {
	return promhttp.HandlerFor(c.registry, opts)
}

// NewServer returns an HTTP server exposing the metrics handler at path.
// Each route function may mount further handlers on the same mux. The
// caller starts the server with ListenAndServe and stops it with Shutdown.
func (c *Collector) NewServer(addr, path string, routes ...func(*http.ServeMux)) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, c.Handler())
	for _, route := range routes {
		route(mux)
	}
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
