package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChecklistRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prequalification_checklist_runs_total",
			Help: "Checklist runs by outcome",
		},
		[]string{"outcome"},
	)

	ChecklistRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prequalification_checklist_run_duration_seconds",
			Help:    "Duration of a checklist run in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PolicyVerdictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prequalification_policy_verdicts_total",
			Help: "Persisted policy verdicts by category and colour",
		},
		[]string{"category", "verdict"},
	)

	BureauChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prequalification_bureau_checks_total",
			Help: "Member bureau classifications by verdict",
		},
		[]string{"verdict"},
	)

	ScheduleRecalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_schedule_recalculations_total",
			Help: "Future schedule recalculations by outcome",
		},
		[]string{"outcome"},
	)

	IdempotencyOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_idempotency_outcomes_total",
			Help: "Idempotent request handling by outcome",
		},
		[]string{"outcome"},
	)
)
