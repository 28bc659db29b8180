package postgres

import (
	"context"
	"fmt"
	"safescout/pkg/domain"
	"safescout/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reportsTable = "verification_reports"
)

// StoreReport inserts a verification report. Returns storage.ErrDuplicate
// when the job already has one.
func (p *PgSQL) StoreReport(ctx context.Context, report domain.Report) (*domain.Report, error) {
	var pgReport PgReport
	if err := pgReport.FromDomain(report); err != nil {
		return nil, err
	}

	var row PgReport
	found, err := p.Builder.Insert(reportsTable).
		Rows(pgReport).
		Returning(&PgReport{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store report into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store report into pg: no row returned")
	}

	return row.ToDomain()
}

// ReportByJobID returns the report submitted for a job. Returns nil when the
// job has no report yet.
func (p *PgSQL) ReportByJobID(ctx context.Context, jobID domain.JobID) (*domain.Report, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(goqu.I("job_id").Eq(uuid.UUID(jobID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch report by job id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
