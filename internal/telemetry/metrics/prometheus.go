package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// SetupPrometheus creates the service registry: build info, go runtime and
// process collectors, plus extra collectors such as the db pool one.
func SetupPrometheus(extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extra {
		if c != nil {
			promRegistry.MustRegister(c)
		}
	}

	return promRegistry
}

// NewMetricsHandler serves the registry on the separate metrics listener.
// Collection errors are logged and the remaining metrics still served.
func NewMetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.InstrumentMetricHandler(
		reg,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{
			ErrorLog:          log.StandardLogger(),
			ErrorHandling:     promhttp.ContinueOnError,
			Registry:          reg,
			EnableOpenMetrics: true,
		}),
	)
}
