// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vote outcomes
const (
	OutcomeApplied    = "applied"
	OutcomeNotFound   = "item_not_found"
	OutcomeNoRetract  = "nothing_to_retract"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
	OutcomeRemoved    = "removed"
	OutcomeNotRemoved = "not_removed"
)

// Metrics holds the service counters. A nil *Metrics records nothing.
type Metrics struct {
	votes    *prometheus.CounterVec
	removals *prometheus.CounterVec
	retries  prometheus.Counter
}

// New registers the counters on reg. Registering twice on the same
// registry panics, so create one Metrics per registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		votes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tally",
			Name:      "votes_total",
			Help:      "Vote requests by delta and outcome.",
		}, []string{"delta", "outcome"}),
		removals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tally",
			Name:      "item_removals_total",
			Help:      "Item removal requests by outcome.",
		}, []string{"outcome"}),
		retries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tally",
			Name:      "transaction_retries_total",
			Help:      "Engine calls retried after a transient storage failure.",
		}),
	}
}

// ObserveVote counts one vote request by its delta and outcome.
func (m *Metrics) ObserveVote(delta int, outcome string) {
	if m == nil {
		return
	}
	m.votes.WithLabelValues(strconv.Itoa(delta), outcome).Inc()
}

// ObserveRemoval counts one removal request by outcome.
func (m *Metrics) ObserveRemoval(outcome string) {
	if m == nil {
		return
	}
	m.removals.WithLabelValues(outcome).Inc()
}

// ObserveRetry counts one rerun of an engine call.
func (m *Metrics) ObserveRetry() {
	if m == nil {
		return
	}
	m.retries.Inc()
}
