// Package metrics exposes Prometheus counters for proposal verdicts.
package metrics

import (
	"net/http"

	"github.com/beka-birhanu/icare/route"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Verdicts counts verdicts by outcome and tracks proposal sizes.
type Verdicts struct {
	registry  *prometheus.Registry
	outcomes  *prometheus.CounterVec
	unitMoves prometheus.Histogram
}

// NewVerdicts registers the verdict collectors on a fresh registry.
func NewVerdicts(namespace string) *Verdicts {
	v := &Verdicts{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verdicts_total",
				Help:      "Total number of proposal verdicts by outcome.",
			},
			[]string{"outcome"},
		),
		unitMoves: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "proposal_unit_moves",
			Help:      "Unit moves per submitted proposal.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	v.registry.MustRegister(v.outcomes, v.unitMoves)
	return v
}

// RecordVerdict implements i.VerdictRecorder.
func (v *Verdicts) RecordVerdict(verdict route.Verdict, steps route.Steps) {
	v.outcomes.WithLabelValues(verdict.Outcome.String()).Inc()
	v.unitMoves.Observe(float64(steps.UnitMoves()))
}

// Handler serves the registry in the Prometheus text format.
func (v *Verdicts) Handler() http.Handler {
	return promhttp.HandlerFor(v.registry, promhttp.HandlerOpts{})
}
