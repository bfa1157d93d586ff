package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter owns a private registry so tests and embedders never collide with
// the default global one.
type Exporter struct {
	registry *prometheus.Registry
}

// NewExporter registers every pipeline collector plus the standard Go and
// process collectors.
func NewExporter() (*Exporter, error) {
	registry := prometheus.NewRegistry()
	for _, c := range allMetrics {
		if err := registry.Register(c); err != nil {
			// Already-registered collectors are fine when a second exporter
			// is built in the same process (tests do this).
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Exporter{registry: registry}, nil
}

// Handler returns the scrape endpoint handler.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
