package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы запроса к бэкенду для метрик
const (
	outcomeOK              = "ok"
	outcomeUnauthenticated = "unauthenticated"
	outcomeHTTPError       = "http_error"
	outcomeNetworkError    = "network_error"
)

// Metrics - метрики обращений консоли к бэкенду
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StaleResponses  *prometheus.CounterVec
}

// NewMetrics регистрирует метрики в переданном регистраторе.
// nil означает глобальный prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rb_console_backend_requests_total",
			Help: "Backend requests issued by the console",
		}, []string{"resource", "method", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rb_console_backend_request_duration_seconds",
			Help:    "Backend request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "method"}),
		StaleResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rb_console_stale_responses_total",
			Help: "Collection loads discarded because a newer load was started",
		}, []string{"resource"}),
	}
}

func (m *Metrics) observe(resource, method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(resource, method, outcome).Inc()
	m.RequestDuration.WithLabelValues(resource, method).Observe(seconds)
}

// Stale отмечает отброшенный устаревший ответ
func (m *Metrics) Stale(resource string) {
	if m == nil {
		return
	}
	m.StaleResponses.WithLabelValues(resource).Inc()
}
