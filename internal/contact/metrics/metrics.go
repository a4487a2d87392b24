package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the contact service. Construct it
// once in main; it registers on the default registry.
type Metrics struct {
	ContactsCreated prometheus.Counter
	ContactsUpdated prometheus.Counter
	ContactsDeleted prometheus.Counter
	CreateConflicts prometheus.Counter
	StoreLatency    *prometheus.HistogramVec
}

// New creates and registers all contact service metrics.
func New() *Metrics {
	return &Metrics{
		ContactsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contacthub_contacts_created_total",
			Help: "Total number of contacts created",
		}),
		ContactsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contacthub_contacts_updated_total",
			Help: "Total number of contacts updated",
		}),
		ContactsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contacthub_contacts_deleted_total",
			Help: "Total number of contacts deleted",
		}),
		CreateConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contacthub_contact_create_conflicts_total",
			Help: "Total number of create attempts rejected as duplicates",
		}),
		StoreLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contacthub_store_latency_seconds",
			Help:    "Latency of store operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}
