package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics собирает метрики HTTP сервера и исходящих вызовов CourtService
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "courtservice_requests_total",
			Help:        "Total number of requests to the court service API",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "courtservice_request_duration_seconds",
			Help:        "Court service API request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstreamRequest фиксирует исходящий вызов CourtService
func (m *Metrics) ObserveUpstreamRequest(operation string, status int, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
