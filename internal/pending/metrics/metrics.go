package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the deferred-user path.
type Metrics struct {
	Stored          prometheus.Counter
	Reconciled      prometheus.Counter
	ReconcileFailed prometheus.Counter
}

// New creates and registers all pending-path metrics.
func New() *Metrics {
	return &Metrics{
		Stored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journalforing_pending_stored_total",
			Help: "Journalposts stored without a resolvable user",
		}),
		Reconciled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journalforing_pending_reconciled_total",
			Help: "Pending journalposts reconciled with a resolved user",
		}),
		ReconcileFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journalforing_pending_reconcile_failures_total",
			Help: "Pending journalposts whose reconciliation failed",
		}),
	}
}

// IncStored records a stored pending journalpost.
func (m *Metrics) IncStored() {
	if m != nil {
		m.Stored.Inc()
	}
}

// IncReconciled records a successfully reconciled pending journalpost.
func (m *Metrics) IncReconciled() {
	if m != nil {
		m.Reconciled.Inc()
	}
}

// IncReconcileFailed records a reconciliation failure for one record.
func (m *Metrics) IncReconcileFailed() {
	if m != nil {
		m.ReconcileFailed.Inc()
	}
}
