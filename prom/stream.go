package prom

import (
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rcrowley/go-metrics"
)

// Lines read by stream mode, as a rate meter.
var StreamLines = metrics.NewRegisteredMeter("lines", metrics.DefaultRegistry)

// Bytes read by stream mode.
var StreamBytes = metrics.NewRegisteredCounter("bytes", metrics.DefaultRegistry)

// ExportStreamMetrics periodically copies go-metrics values into the default prometheus registry.
// Blocks forever, call in a goroutine.
func ExportStreamMetrics(interval time.Duration) {
	prometheusClient := prometheusmetrics.NewPrometheusProvider(
		metrics.DefaultRegistry, "uniquestream", "stream", prometheus.DefaultRegisterer, interval)
	prometheusClient.UpdatePrometheusMetrics()
}
