package storage

import (
	"context"
	"safescout/pkg/domain"
)

// ReportStorage defines persistence operations for verification reports.
type ReportStorage interface {
	// StoreReport inserts a new report and returns the stored row. Returns
	// ErrDuplicate when the job already has a report.
	StoreReport(ctx context.Context, report domain.Report) (*domain.Report, error)
	// ReportByJobID fetches the report for a job. Returns nil when not found.
	ReportByJobID(ctx context.Context, jobID domain.JobID) (*domain.Report, error)
}
