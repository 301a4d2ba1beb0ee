// Package metrics exposes the service's Prometheus collectors. All
// collectors are registered on the default registry and served from
// GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsSubmitted counts accepted submissions by department.
	JobsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cityagent",
		Subsystem: "jobs",
		Name:      "submitted_total",
		Help:      "Jobs accepted by the job manager.",
	}, []string{"agent_type"})

	// JobsInFlight gauges currently queued+running jobs.
	JobsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "cityagent",
		Subsystem: "jobs",
		Name:      "in_flight",
		Help:      "Jobs currently queued or running.",
	})

	// Decisions counts terminal pipeline decisions.
	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cityagent",
		Subsystem: "pipeline",
		Name:      "decisions_total",
		Help:      "Terminal decisions by department and outcome.",
	}, []string{"agent_type", "decision"})

	// PipelineDuration observes end-to-end pipeline wall time.
	PipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cityagent",
		Subsystem: "pipeline",
		Name:      "duration_seconds",
		Help:      "Pipeline wall time from claim to terminal state.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"agent_type"})

	// Replans counts replanning loops taken, by department.
	Replans = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cityagent",
		Subsystem: "pipeline",
		Name:      "replans_total",
		Help:      "Replanning loops by department.",
	}, []string{"agent_type"})

	// Conflicts counts checkpoint conflicts by kind.
	Conflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cityagent",
		Subsystem: "coordinator",
		Name:      "conflicts_total",
		Help:      "Conflicts detected at plan checkpoints, by kind.",
	}, []string{"kind"})
)
