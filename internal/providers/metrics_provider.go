package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"camsd/internal/models"
	"camsd/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveSyncDuration(duration time.Duration)
	IncSyncErrors()
	IncSkippedRows(count int)
	IncUnknownStatus(count int)
	SetRecordsTotal(userID string, count int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	syncDuration    prometheus.Histogram
	syncErrors      prometheus.Counter
	skippedRows     prometheus.Counter
	unknownStatus   prometheus.Counter
	recordsTotal    *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveSyncDuration(duration time.Duration) {
	m.syncDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncSyncErrors() {
	m.syncErrors.Inc()
}

func (m *MetricsProvider) IncSkippedRows(count int) {
	m.skippedRows.Add(float64(count))
}

func (m *MetricsProvider) IncUnknownStatus(count int) {
	m.unknownStatus.Add(float64(count))
}

func (m *MetricsProvider) SetRecordsTotal(userID string, count int) {
	m.recordsTotal.WithLabelValues(userID).Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, set *models.AttendanceSet) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "camsd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "camsd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "camsd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "camsd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		syncDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "camsd_sync_duration_seconds",
			Help:    "Duration of upstream sync operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		syncErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "camsd_sync_errors_total",
			Help: "Total number of failed upstream syncs",
		}),

		skippedRows: promauto.NewCounter(prometheus.CounterOpts{
			Name: "camsd_skipped_rows_total",
			Help: "Total number of wire rows dropped for column mismatch",
		}),

		unknownStatus: promauto.NewCounter(prometheus.CounterOpts{
			Name: "camsd_unknown_status_total",
			Help: "Records whose DAYSTATUS hit the present fallback",
		}),

		recordsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "camsd_records_total",
			Help: "Number of synced punch records per user",
		}, []string{"user"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "camsd_tracked_users",
		Help: "Number of users with synced attendance data",
	}, func() float64 {
		return float64(set.Len())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveSyncDuration(_ time.Duration)              {}
func (n *noopMetrics) IncSyncErrors()                                   {}
func (n *noopMetrics) IncSkippedRows(_ int)                             {}
func (n *noopMetrics) IncUnknownStatus(_ int)                           {}
func (n *noopMetrics) SetRecordsTotal(_ string, _ int)                  {}
