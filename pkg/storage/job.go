package storage

import (
	"context"
	"safescout/pkg/domain"
	"time"
)

// JobPage groups a page of jobs together with an optional NextCursor used for
// pagination.
type JobPage struct {
	// Jobs contains the current page of job records.
	Jobs []domain.Job
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// JobStorage defines persistence operations for verification jobs.
//
// Conditional updates (TryAssignScout, UpdateJobStatus, CancelJob) implement
// the compare-and-set semantics the lifecycle requires: they return a nil job
// and a nil error when the condition did not hold (row exists but is in the
// wrong state, or does not exist at all). Callers distinguish the two cases
// with a follow-up read. Under concurrent attempts on the same row, the
// database guarantees at most one conditional update wins.
type JobStorage interface {
	// StoreJob inserts a new job and returns the stored row as it exists in the
	// database, including generated fields.
	StoreJob(ctx context.Context, job domain.Job) (*domain.Job, error)
	// JobByID fetches a job by its ID. Returns nil when not found.
	JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error)
	// UpdateJobRisk replaces all four risk fields of a job in a single atomic
	// update and returns the updated row. Returns nil when the job is absent.
	UpdateJobRisk(ctx context.Context, id domain.JobID, verdict domain.RiskVerdict) (*domain.Job, error)
	// TryAssignScout sets the scout reference and advances status to
	// SCOUT_ASSIGNED, conditional on the job being in CREATED with no scout.
	TryAssignScout(ctx context.Context, id domain.JobID, scoutID domain.UserID) (*domain.Job, error)
	// UpdateJobStatus advances status from one specific state to another,
	// conditional on the current status matching from.
	UpdateJobStatus(ctx context.Context, id domain.JobID, from, to domain.JobStatus) (*domain.Job, error)
	// CancelJob moves the job to CANCELLED, conditional on the current status
	// being non-terminal.
	CancelJob(ctx context.Context, id domain.JobID) (*domain.Job, error)
	// BuyerJobs returns a page of jobs owned by the given buyer created before
	// the optional cursor time, most recent first.
	BuyerJobs(ctx context.Context, buyerID domain.UserID, cursor time.Time, limit uint) (JobPage, error)
	// ScoutListings returns a page of jobs visible to the given scout: the
	// unclaimed pool (status CREATED) plus the scout's own claimed backlog,
	// most recent first.
	ScoutListings(ctx context.Context, scoutID domain.UserID, cursor time.Time, limit uint) (JobPage, error)
}
