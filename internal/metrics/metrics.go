// Package metrics provides Prometheus metrics for mission runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for MissionsTotal.
const (
	OutcomeCompleted = "completed"
	OutcomeObstacle  = "obstacle"
	OutcomeFailed    = "failed"
)

var (
	// MissionsTotal counts finished missions by outcome.
	MissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marsrover_missions_total",
		Help: "Total number of finished missions, by outcome (completed/obstacle/failed).",
	}, []string{"outcome"})

	// CommandsTotal counts commands received for execution.
	CommandsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marsrover_commands_total",
		Help: "Total number of rover commands received.",
	})

	// EffectsTotal counts interpreted effects by kind.
	EffectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marsrover_effects_total",
		Help: "Total number of interpreted effects, by effect kind.",
	}, []string{"effect"})
)

// RecordOutcome increments MissionsTotal for outcome.
func RecordOutcome(outcome string) {
	MissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordEffect increments EffectsTotal for kind.
func RecordEffect(kind string) {
	EffectsTotal.WithLabelValues(kind).Inc()
}
