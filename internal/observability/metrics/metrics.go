package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "runtime_report_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec

	configBuilds  prometheus.Counter
	configLatency prometheus.Histogram

	exportTotal   *prometheus.CounterVec
	exportLatency prometheus.Histogram
)

// Init registers the service metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		)
		configBuilds = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "config_builds_total",
				Help: "Total chart configuration builds",
			},
		)
		configLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "config_build_seconds",
				Help:    "Chart configuration build latency",
				Buckets: prometheus.DefBuckets,
			},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total PNG exports by result",
			},
			[]string{"result"},
		)
		exportLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_seconds",
				Help:    "PNG export latency",
				Buckets: prometheus.DefBuckets,
			},
		)
		prometheus.MustRegister(
			httpRequests,
			configBuilds,
			configLatency,
			exportTotal,
			exportLatency,
		)
	})
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequest(method, path string, status string) {
	if httpRequests == nil {
		return
	}
	httpRequests.WithLabelValues(method, path, status).Inc()
}

func ObserveConfigBuild(d time.Duration) {
	if configBuilds == nil {
		return
	}
	configBuilds.Inc()
	configLatency.Observe(d.Seconds())
}

func ObserveExport(d time.Duration, err error) {
	if exportTotal == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	exportTotal.WithLabelValues(result).Inc()
	exportLatency.Observe(d.Seconds())
}
