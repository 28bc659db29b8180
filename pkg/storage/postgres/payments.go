package postgres

import (
	"context"
	"fmt"
	"safescout/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	paymentsTable = "payments"
)

// UpsertPayment inserts the payment record for a job, or refreshes the intent
// reference and amounts when one already exists. job_id carries a unique
// constraint, so a job never holds more than one payment row.
func (p *PgSQL) UpsertPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	var pgPayment PgPayment
	pgPayment.FromDomain(payment)

	var row PgPayment
	found, err := p.Builder.Insert(paymentsTable).
		Rows(pgPayment).
		OnConflict(goqu.DoUpdate("job_id", goqu.Record{
			"gateway_intent_id": pgPayment.GatewayIntentID,
			"status":            pgPayment.Status,
			"buyer_amount":      pgPayment.BuyerAmount,
			"platform_fee":      pgPayment.PlatformFee,
			"scout_payout":      pgPayment.ScoutPayout,
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgPayment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert payment into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not upsert payment into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// PaymentByJobID returns the payment record for a job. Returns nil when the
// job has no payment yet.
func (p *PgSQL) PaymentByJobID(ctx context.Context, jobID domain.JobID) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.From(paymentsTable).
		Where(goqu.I("job_id").Eq(uuid.UUID(jobID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment by job id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdatePaymentStatus sets the status of a job's payment record. Returns nil
// when the job has no payment.
func (p *PgSQL) UpdatePaymentStatus(ctx context.Context,
	jobID domain.JobID,
	status domain.PaymentStatus) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.Update(paymentsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("job_id").Eq(uuid.UUID(jobID)),
	).Returning(&PgPayment{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update payment status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
