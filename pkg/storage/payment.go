package storage

import (
	"context"
	"safescout/pkg/domain"
)

// PaymentStorage defines persistence operations for payment records.
type PaymentStorage interface {
	// UpsertPayment inserts or replaces the payment record for a job (at most
	// one per job) and returns the stored row.
	UpsertPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	// PaymentByJobID fetches the payment record for a job. Returns nil when not
	// found.
	PaymentByJobID(ctx context.Context, jobID domain.JobID) (*domain.Payment, error)
	// UpdatePaymentStatus sets the status of a job's payment record and returns
	// the updated row. Returns nil when absent.
	UpdatePaymentStatus(ctx context.Context, jobID domain.JobID, status domain.PaymentStatus) (*domain.Payment, error)
}
