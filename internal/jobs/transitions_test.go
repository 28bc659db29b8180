package jobs_test

import (
	"safescout/internal/jobs"
	"safescout/pkg/domain"
	"testing"
)

func TestIsTransitionAllowed(t *testing.T) {
	allowed := [][2]domain.JobStatus{
		{domain.JobStatusCreated, domain.JobStatusScoutAssigned},
		{domain.JobStatusCreated, domain.JobStatusCancelled},
		{domain.JobStatusScoutAssigned, domain.JobStatusInProgress},
		{domain.JobStatusScoutAssigned, domain.JobStatusCancelled},
		{domain.JobStatusInProgress, domain.JobStatusVerified},
		{domain.JobStatusInProgress, domain.JobStatusCancelled},
		{domain.JobStatusVerified, domain.JobStatusCompleted},
		{domain.JobStatusVerified, domain.JobStatusCancelled},
	}
	for _, tr := range allowed {
		if !jobs.IsTransitionAllowed(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be allowed", tr[0], tr[1])
		}
	}

	denied := [][2]domain.JobStatus{
		{domain.JobStatusCreated, domain.JobStatusInProgress},
		{domain.JobStatusCreated, domain.JobStatusVerified},
		{domain.JobStatusScoutAssigned, domain.JobStatusCreated},
		{domain.JobStatusInProgress, domain.JobStatusCompleted},
		{domain.JobStatusVerified, domain.JobStatusInProgress},
		{domain.JobStatusCompleted, domain.JobStatusCancelled},
		{domain.JobStatusCancelled, domain.JobStatusCreated},
	}
	for _, tr := range denied {
		if jobs.IsTransitionAllowed(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be denied", tr[0], tr[1])
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !jobs.IsTerminal(domain.JobStatusCompleted) || !jobs.IsTerminal(domain.JobStatusCancelled) {
		t.Fatalf("expected COMPLETED and CANCELLED to be terminal")
	}
	for _, s := range []domain.JobStatus{
		domain.JobStatusCreated,
		domain.JobStatusScoutAssigned,
		domain.JobStatusInProgress,
		domain.JobStatusVerified,
	} {
		if jobs.IsTerminal(s) {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}
