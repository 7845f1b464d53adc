// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ledger"

// Metrics counts network interactions. A nil *Metrics records nothing.
type Metrics struct {
	accountLoads      prometheus.Counter
	accountLoadErrors prometheus.Counter
	submitted         prometheus.Counter
	committed         prometheus.Counter
	rejected          *prometheus.CounterVec
	transportFailures prometheus.Counter
	workflows         *prometheus.CounterVec
}

func NewMetrics(r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		accountLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_loads",
			Help:      "number of account snapshots loaded",
		}),
		accountLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_load_errors",
			Help:      "number of failed account loads",
		}),
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submitted",
			Help:      "number of envelopes submitted",
		}),
		committed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "committed",
			Help:      "number of envelopes committed",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected",
			Help:      "number of envelopes rejected by class",
		}, []string{"class"}),
		transportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_failures",
			Help:      "number of submissions with an unknown outcome",
		}),
		workflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflows",
			Help:      "number of issuance workflows by final state",
		}, []string{"state"}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.accountLoads),
		r.Register(m.accountLoadErrors),
		r.Register(m.submitted),
		r.Register(m.committed),
		r.Register(m.rejected),
		r.Register(m.transportFailures),
		r.Register(m.workflows),
	)
	return m, errs.Err
}

func (m *Metrics) accountLoaded(ok bool) {
	if m == nil {
		return
	}
	m.accountLoads.Inc()
	if !ok {
		m.accountLoadErrors.Inc()
	}
}

func (m *Metrics) outcome(o *Outcome) {
	if m == nil {
		return
	}
	m.submitted.Inc()
	switch o.Status {
	case Committed:
		m.committed.Inc()
	case Rejected:
		m.rejected.WithLabelValues(o.Class.String()).Inc()
	default:
		m.transportFailures.Inc()
	}
}

func (m *Metrics) workflowFinished(state IssuanceState) {
	if m == nil {
		return
	}
	m.workflows.WithLabelValues(state.String()).Inc()
}
