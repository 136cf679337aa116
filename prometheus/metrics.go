package prometheus

import (
	"bookprice-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Table view metrics
	TableOperationsCounter prometheus.CounterVec
	RecordsLoadedGauge     prometheus.Gauge

	// Export metrics
	ExportsCounter      prometheus.CounterVec
	ExportRowsHistogram prometheus.Histogram

	// Upstream refresh metrics
	RefreshCounter  prometheus.CounterVec
	RefreshDuration prometheus.Histogram
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Table view operations (list, get, load)
	TableOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_table_operations_total",
			Help: "Total number of pricing table operations",
		},
		[]string{"operation"},
	)

	// Records currently loaded in the store
	RecordsLoadedGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_records_loaded",
			Help: "Number of price records currently loaded",
		},
	)

	// Export outcomes
	ExportsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_exports_total",
			Help: "Total number of spreadsheet export attempts",
		},
		[]string{"status"},
	)

	// Rows per successful export
	ExportRowsHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_export_rows",
			Help:    "Number of rows per successful export",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// Upstream refresh outcomes
	RefreshCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_refresh_total",
			Help: "Total number of upstream refresh attempts",
		},
		[]string{"result"},
	)

	// Upstream refresh duration
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_refresh_duration_seconds",
			Help:    "Duration of upstream refreshes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
}

// RecordTableOperation increments the counter for table operations
func RecordTableOperation(operation string) {
	TableOperationsCounter.WithLabelValues(operation).Inc()
}

// SetRecordsLoaded updates the gauge for loaded records
func SetRecordsLoaded(count int) {
	RecordsLoadedGauge.Set(float64(count))
}

// RecordExport increments the export counter for an outcome
func RecordExport(status string) {
	ExportsCounter.WithLabelValues(status).Inc()
}

// RecordRefresh increments the refresh counter for an outcome
func RecordRefresh(result string) {
	RefreshCounter.WithLabelValues(result).Inc()
}
