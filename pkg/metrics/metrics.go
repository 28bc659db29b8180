// Package metrics holds shared Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// JobsCreated counts jobs submitted by buyers, labeled by tier.
	JobsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safescout",
		Name:      "jobs_created_total",
		Help:      "Number of verification jobs created.",
	}, []string{"tier"})

	// JobsAssigned counts successful scout assignments.
	JobsAssigned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "safescout",
		Name:      "jobs_assigned_total",
		Help:      "Number of jobs claimed by scouts.",
	})

	// JobTransitions counts lifecycle transitions, labeled by target status.
	JobTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safescout",
		Name:      "job_transitions_total",
		Help:      "Number of job status transitions.",
	}, []string{"to"})

	// RiskAssessments counts completed risk assessments, labeled by recommendation.
	RiskAssessments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "safescout",
		Name:      "risk_assessments_total",
		Help:      "Number of listings assessed by the risk engine.",
	}, []string{"recommendation"})
)
