package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the zoo module.
// Tracks entity creation, blocked deletions and service operation durations.
type Metrics struct {
	ZonesCreated      prometheus.Counter
	CreaturesCreated  prometheus.Counter
	DeletesBlocked    *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New creates a new Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ZonesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "zoo_zones_created_total",
			Help: "Total number of zones created",
		}),
		CreaturesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "zoo_creatures_created_total",
			Help: "Total number of creatures created",
		}),
		DeletesBlocked: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_deletes_blocked_total",
			Help: "Deletions refused by a business rule (occupied zone, critical creature)",
		}, []string{"entity"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zoo_service_operation_duration_seconds",
			Help:    "Duration of zoo service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementZoneCreated records a successful zone creation.
func (m *Metrics) IncrementZoneCreated() {
	m.ZonesCreated.Inc()
}

// IncrementCreatureCreated records a successful creature creation.
func (m *Metrics) IncrementCreatureCreated() {
	m.CreaturesCreated.Inc()
}

// IncrementDeleteBlocked records a refused deletion for entity ("zone" or "creature").
func (m *Metrics) IncrementDeleteBlocked(entity string) {
	m.DeletesBlocked.WithLabelValues(entity).Inc()
}

// ObserveOperation records the duration of operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
