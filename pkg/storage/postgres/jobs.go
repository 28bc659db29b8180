package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"safescout/pkg/domain"
	"safescout/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	jobsTable = "jobs"
)

func (p *PgSQL) StoreJob(ctx context.Context, job domain.Job) (*domain.Job, error) {
	var pgJob PgJob
	if err := pgJob.FromDomain(job); err != nil {
		return nil, err
	}

	var row PgJob
	found, err := p.Builder.Insert(jobsTable).
		Rows(pgJob).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store job into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store job into pg: no row returned")
	}

	return row.ToDomain()
}

// JobByID returns a job by its ID. Returns nil when no such row exists.
func (p *PgSQL) JobByID(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.From(jobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateJobRisk writes all four risk fields in one UPDATE so readers never
// observe a partially assessed job.
func (p *PgSQL) UpdateJobRisk(ctx context.Context, id domain.JobID, verdict domain.RiskVerdict) (*domain.Job, error) {
	signals, err := json.Marshal(verdict.Signals)
	if err != nil {
		return nil, fmt.Errorf("could not marshal risk signals: %w", err)
	}

	var row PgJob
	found, err := p.Builder.Update(jobsTable).
		Set(goqu.Record{
			"risk_score":          verdict.Score,
			"risk_signals":        signals,
			"risk_recommendation": string(verdict.Recommendation),
			"risk_explanation":    verdict.Explanation,
			"updated_at":          goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgJob{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update job risk in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// TryAssignScout claims a job for a scout. The WHERE clause restricts the
// update to unassigned jobs in CREATED, so under concurrent claims on the
// same row exactly one caller sees the returned record and the rest get nil.
func (p *PgSQL) TryAssignScout(ctx context.Context, id domain.JobID, scoutID domain.UserID) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.Update(jobsTable).
		Set(goqu.Record{
			"scout_id":   uuid.UUID(scoutID),
			"status":     string(domain.JobStatusScoutAssigned),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.JobStatusCreated)),
		goqu.I("scout_id").IsNull(),
	).Returning(&PgJob{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not assign scout in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateJobStatus advances a job from one specific status to another. Returns
// nil when the row is missing or its current status is not from.
func (p *PgSQL) UpdateJobStatus(ctx context.Context, id domain.JobID, from, to domain.JobStatus) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.Update(jobsTable).
		Set(goqu.Record{
			"status":     string(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(from)),
	).Returning(&PgJob{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update job status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// CancelJob moves a job to CANCELLED unless it already reached a terminal
// status.
func (p *PgSQL) CancelJob(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.Update(jobsTable).
		Set(goqu.Record{
			"status":     string(domain.JobStatusCancelled),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").NotIn(
			string(domain.JobStatusCompleted),
			string(domain.JobStatusCancelled),
		),
	).Returning(&PgJob{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not cancel job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// BuyerJobs returns a page of a buyer's jobs filtered by optional cursor and
// limited by limit. Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) BuyerJobs(ctx context.Context,
	buyerID domain.UserID,
	cursor time.Time,
	limit uint) (storage.JobPage, error) {
	w := []goqu.Expression{
		goqu.I("buyer_id").Eq(uuid.UUID(buyerID)),
	}

	return p.jobPage(ctx, w, cursor, limit)
}

// ScoutListings returns the jobs a scout can act on: the open pool plus the
// scout's own claimed jobs, ordered by created_at DESC, id DESC.
func (p *PgSQL) ScoutListings(ctx context.Context,
	scoutID domain.UserID,
	cursor time.Time,
	limit uint) (storage.JobPage, error) {
	w := []goqu.Expression{
		goqu.Or(
			goqu.I("status").Eq(string(domain.JobStatusCreated)),
			goqu.I("scout_id").Eq(uuid.UUID(scoutID)),
		),
	}

	return p.jobPage(ctx, w, cursor, limit)
}

func (p *PgSQL) jobPage(ctx context.Context,
	w []goqu.Expression,
	cursor time.Time,
	limit uint) (storage.JobPage, error) {
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(jobsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgJob
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.JobPage{}, fmt.Errorf("could not fetch jobs from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgJobsToDomain(rows)
	if err != nil {
		return storage.JobPage{}, err
	}

	return storage.JobPage{
		Jobs:       domainRows,
		NextCursor: nextCursor,
	}, nil
}
