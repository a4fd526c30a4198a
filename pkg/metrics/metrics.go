package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	admissionsGranted  *prometheus.CounterVec
	admissionsRejected *prometheus.CounterVec
}

// New регистрирует и возвращает коллектор метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		admissionsGranted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_admissions_granted_total",
				Help:        "Total number of granted booking admissions",
				ConstLabels: constLabels,
			},
			[]string{"hall"},
		),
		admissionsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_admissions_rejected_total",
				Help:        "Total number of rejected booking admissions",
				ConstLabels: constLabels,
			},
			[]string{"hall", "reason"},
		),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// AdmissionGranted фиксирует успешное бронирование зала
func (m *Metrics) AdmissionGranted(hall string) {
	m.admissionsGranted.WithLabelValues(hall).Inc()
}

// AdmissionRejected фиксирует отклоненное бронирование с причиной
func (m *Metrics) AdmissionRejected(hall, reason string) {
	m.admissionsRejected.WithLabelValues(hall, reason).Inc()
}
