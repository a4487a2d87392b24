package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the gateway. Construct it once in
// main; it registers on the default registry.
type Metrics struct {
	BackendRequests *prometheus.CounterVec
	BackendErrors   *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec
}

// New creates and registers all gateway metrics.
func New() *Metrics {
	return &Metrics{
		BackendRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contacthub_gateway_backend_requests_total",
			Help: "Total number of outbound requests to the contact service",
		}, []string{"operation"}),
		BackendErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contacthub_gateway_backend_errors_total",
			Help: "Total number of failed outbound requests, labeled by error code",
		}, []string{"operation", "code"}),
		BackendLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contacthub_gateway_backend_latency_seconds",
			Help:    "Latency of outbound requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}
