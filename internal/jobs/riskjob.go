package jobs

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RiskJobArgs contains the arguments for a risk assessment job submitted to
// River. The job ID is the unique key so each verification job is assessed
// exactly once.
type RiskJobArgs struct {
	// JobID is the verification job to assess. Marked unique so River enforces
	// one assessment job per verification job via InsertOpts.UniqueOpts.
	JobID string `json:"jobId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry
	// the assessment.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the risk worker.
func (args RiskJobArgs) Kind() string { return "AssessJobRisk" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints preventing
// duplicate assessments of the same verification job.
func (args RiskJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one assessment per job in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
