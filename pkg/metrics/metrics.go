package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер Prometheus-коллекторов сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     *prometheus.GaugeVec
	dbConnsIdle     *prometheus.GaugeVec
	dbConnsInUse    *prometheus.GaugeVec

	bookingsCreatedTotal   *prometheus.CounterVec
	bookingsCancelledTotal *prometheus.CounterVec
}

// New registers and returns the service metrics on the default registry.
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "query"}),

		dbConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Open database connections",
		}, []string{"service"}),

		dbConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Idle database connections",
		}, []string{"service"}),

		dbConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Database connections currently in use",
		}, []string{"service"}),

		bookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created",
		}, []string{"service"}),

		bookingsCancelledTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total number of bookings cancelled",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest records a finished HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records a finished database query.
func (m *Metrics) ObserveDBQuery(query string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, query).Observe(duration.Seconds())
}

// SetDBPoolStats records connection pool gauges.
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbConnsOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbConnsIdle.WithLabelValues(m.serviceName).Set(float64(idle))
	m.dbConnsInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
}

// IncBookingCreated increments the created-bookings counter.
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.WithLabelValues(m.serviceName).Inc()
}

// IncBookingCancelled increments the cancelled-bookings counter.
func (m *Metrics) IncBookingCancelled() {
	m.bookingsCancelledTotal.WithLabelValues(m.serviceName).Inc()
}
