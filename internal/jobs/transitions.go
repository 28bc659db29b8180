// Package jobs coordinates the verification job lifecycle: creation with
// frozen pricing, scout assignment, status progression, report submission and
// cancellation.
//
// Valid status graph:
//
//	CREATED ──► SCOUT_ASSIGNED ──► IN_PROGRESS ──► VERIFIED ──► COMPLETED
//	    │              │                 │             │
//	    └──────────────┴─────────────────┴─────────────┴──► CANCELLED
//
// COMPLETED and CANCELLED are terminal states.
package jobs

import (
	"safescout/pkg/domain"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[domain.JobStatus][]domain.JobStatus{
	domain.JobStatusCreated:       {domain.JobStatusScoutAssigned, domain.JobStatusCancelled},
	domain.JobStatusScoutAssigned: {domain.JobStatusInProgress, domain.JobStatusCancelled},
	domain.JobStatusInProgress:    {domain.JobStatusVerified, domain.JobStatusCancelled},
	domain.JobStatusVerified:      {domain.JobStatusCompleted, domain.JobStatusCancelled},
	// COMPLETED and CANCELLED are terminal — no outgoing transitions
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to domain.JobStatus) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state — no outgoing transitions
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}

	return false
}

// IsTerminal returns true when the status has no outgoing transitions.
func IsTerminal(s domain.JobStatus) bool {
	_, ok := validTransitions[s]

	return !ok
}
