package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathai_extractions_total",
		Help: "Completed requirement extraction passes.",
	})

	classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathai_classifications_total",
		Help: "Requirement classifications by gating label.",
	}, []string{"label"})

	gateRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathai_gate_runs_total",
		Help: "Explicit gate evaluations by verdict.",
	}, []string{"status"})

	eligibilityChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathai_eligibility_checks_total",
		Help: "Eligibility matrix evaluations by verdict.",
	}, []string{"verdict"})
)
