package worker

import (
	"context"
	"fmt"
	"safescout/internal/jobs"
	"safescout/internal/risk"
	"safescout/pkg/domain"
	"safescout/pkg/logger"
	"safescout/pkg/metrics"
	"safescout/pkg/serrors"
	"safescout/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RiskAssessWorker is a River worker that scores newly created verification
// jobs. It loads the job's listing attributes, runs the risk engine over them
// and writes the verdict back in a single atomic update.
//
// The assessment is deterministic, so retries after transient storage errors
// are safe. A verification job that disappeared before the assessment ran
// cancels the queue entry instead of retrying.
type RiskAssessWorker struct {
	river.WorkerDefaults[jobs.RiskJobArgs]

	// engine scores listings against the configured market price baseline.
	engine risk.Engine
	// storage is the persistence layer used to load jobs and store verdicts.
	storage storage.Storage
}

// NewRiskAssessWorker constructs a RiskAssessWorker using the provided engine
// and storage.
func NewRiskAssessWorker(engine risk.Engine, storage storage.Storage) *RiskAssessWorker {
	return &RiskAssessWorker{
		engine:  engine,
		storage: storage,
	}
}

// Work executes a single risk assessment job.
func (w *RiskAssessWorker) Work(ctx context.Context, job *river.Job[jobs.RiskJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("queueJobID", job.ID), zap.String("jobID", job.Args.JobID))

	id, err := uuid.Parse(job.Args.JobID)
	if err != nil {
		// malformed args never become valid, don't retry
		return river.JobCancel(fmt.Errorf("could not parse job ID: %w", err)) //nolint: wrapcheck
	}

	target, err := w.storage.JobByID(ctx, domain.JobID(id))
	if err != nil {
		logger.Error(ctx, "error loading job for risk assessment", zap.Error(err))

		return fmt.Errorf("could not get job: %w", err)
	}
	if target == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "job not found")) //nolint: wrapcheck
	}

	verdict := w.engine.Assess(risk.Input{
		Title:                target.ItemTitle,
		Price:                target.ItemPrice,
		Description:          target.Description,
		SellerAccountAgeDays: target.SellerAccountAgeDays,
		PhotoCount:           len(target.ItemPhotos),
	})

	updated, err := w.storage.UpdateJobRisk(ctx, target.ID, verdict)
	if err != nil {
		logger.Error(ctx, "error storing risk verdict", zap.Error(err))

		return fmt.Errorf("could not update job risk: %w", err)
	}
	if updated == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "job vanished before verdict was stored")) //nolint: wrapcheck, lll
	}

	metrics.RiskAssessments.WithLabelValues(string(verdict.Recommendation)).Inc()
	logger.Info(ctx, "job risk assessed",
		zap.Int("score", verdict.Score),
		zap.String("recommendation", string(verdict.Recommendation)))

	return nil
}
