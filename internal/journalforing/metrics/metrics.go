package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the main journalforing path.
type Metrics struct {
	Behandlet *prometheus.CounterVec
	Feilet    prometheus.Counter
	Avbrutt   prometheus.Counter
	Varighet  prometheus.Histogram
}

// New creates and registers all orchestration metrics.
func New() *Metrics {
	return &Metrics{
		Behandlet: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "journalforing_hendelser_behandlet_total",
			Help: "SED events journaled, by tema and owning unit",
		}, []string{"tema", "enhet"}),
		Feilet: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journalforing_hendelser_feilet_total",
			Help: "SED events whose processing failed and will be redelivered",
		}),
		Avbrutt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "journalforing_journalposter_avbrutt_total",
			Help: "Journalposts marked aborted after submission",
		}),
		Varighet: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "journalforing_varighet_sekunder",
			Help:    "End-to-end processing time for one SED event",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncBehandlet records one completed event.
func (m *Metrics) IncBehandlet(tema, enhet string) {
	if m != nil {
		m.Behandlet.WithLabelValues(tema, enhet).Inc()
	}
}

// IncFeilet records one failed event.
func (m *Metrics) IncFeilet() {
	if m != nil {
		m.Feilet.Inc()
	}
}

// IncAvbrutt records one aborted journalpost.
func (m *Metrics) IncAvbrutt() {
	if m != nil {
		m.Avbrutt.Inc()
	}
}

// ObserveVarighet records the processing time for one event.
func (m *Metrics) ObserveVarighet(d time.Duration) {
	if m != nil {
		m.Varighet.Observe(d.Seconds())
	}
}
