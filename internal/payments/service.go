package payments

import (
	"context"
	"fmt"
	"safescout/internal/config"
	"safescout/internal/jobs"
	"safescout/pkg/domain"
	"safescout/pkg/paygate"
	"safescout/pkg/serrors"
	"safescout/pkg/storage"

	"github.com/google/uuid"
)

// Options configure the payment service.
type Options struct {
	// Currency is the ISO 4217 code all charges are denominated in.
	Currency string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Currency: cfg.Payment.Currency,
	}
}

// service is the concrete implementation of the Service interface. It keeps
// the payment record in lockstep with the gateway's view of the intent and
// drives the owning job to COMPLETED when funds settle.
type service struct {
	options Options
	storage storage.Storage
	gateway paygate.Client
	jobs    jobs.Service
}

// buyerJob fetches the job and asserts the actor may move money on it: the
// owning buyer or an admin.
func (s *service) buyerJob(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*domain.Job, error) {
	job, err := s.jobs.JobByID(ctx, actor, jobID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if actor.Role != domain.RoleAdmin && job.BuyerID != actor.UserID {
		return nil, serrors.With(serrors.ErrForbidden, "only the buyer can manage this job's payment")
	}

	return job, nil
}

// CreateIntent opens a manual-capture intent for the job's total fee. Calling
// it again for the same job replaces the payment record, so an abandoned
// checkout can be retried. The split always comes from the job's frozen fee
// breakdown, never from the charged amount.
func (s *service) CreateIntent(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*CheckoutIntent, error) {
	job, err := s.buyerJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	if jobs.IsTerminal(job.Status) {
		return nil, serrors.With(serrors.ErrConflict, "job is already closed")
	}

	intent, err := s.gateway.CreateIntent(ctx, paygate.CreateIntentReq{
		Amount:    job.TotalFee,
		Currency:  s.options.Currency,
		Reference: uuid.UUID(job.ID).String(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create payment intent: %w", err)
	}

	payment, err := s.storage.UpsertPayment(ctx, domain.Payment{
		JobID:           job.ID,
		GatewayIntentID: intent.ID,
		Status:          domain.PaymentStatusPending,
		BuyerAmount:     job.TotalFee,
		PlatformFee:     job.TotalFee.Sub(job.ScoutFee),
		ScoutPayout:     job.ScoutFee,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store payment: %w", err)
	}

	return &CheckoutIntent{
		Payment:      payment,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// pendingPayment fetches the job's payment record and asserts the funds are
// still held.
func (s *service) pendingPayment(ctx context.Context, jobID domain.JobID) (*domain.Payment, error) {
	payment, err := s.storage.PaymentByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no payment for this job")
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil, serrors.With(serrors.ErrConflict, "payment is already settled")
	}

	return payment, nil
}

// Release captures the held funds of a VERIFIED job, marks the payment
// RELEASED and completes the job.
func (s *service) Release(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error) {
	job, err := s.buyerJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusVerified {
		return nil, serrors.With(serrors.ErrConflict, "funds are released after verification")
	}

	payment, err := s.pendingPayment(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.CaptureIntent(ctx, payment.GatewayIntentID); err != nil {
		return nil, fmt.Errorf("could not capture payment intent: %w", err)
	}

	updated, err := s.storage.UpdatePaymentStatus(ctx, jobID, domain.PaymentStatusReleased)
	if err != nil {
		return nil, fmt.Errorf("could not update payment status: %w", err)
	}

	if _, err := s.jobs.Complete(ctx, jobID); err != nil {
		return nil, fmt.Errorf("could not complete job: %w", err)
	}

	return updated, nil
}

// Void releases the authorization hold of a CANCELLED job's payment and marks
// the record FAILED.
func (s *service) Void(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error) {
	job, err := s.buyerJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusCancelled {
		return nil, serrors.With(serrors.ErrConflict, "only cancelled jobs can be voided")
	}

	payment, err := s.pendingPayment(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.CancelIntent(ctx, payment.GatewayIntentID); err != nil {
		return nil, fmt.Errorf("could not cancel payment intent: %w", err)
	}

	updated, err := s.storage.UpdatePaymentStatus(ctx, jobID, domain.PaymentStatusFailed)
	if err != nil {
		return nil, fmt.Errorf("could not update payment status: %w", err)
	}

	return updated, nil
}

// PaymentByJobID returns the payment record of a job visible to the actor.
func (s *service) PaymentByJobID(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error) {
	if _, err := s.jobs.JobByID(ctx, actor, jobID); err != nil {
		return nil, err //nolint: wrapcheck
	}

	payment, err := s.storage.PaymentByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if payment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no payment for this job")
	}

	return payment, nil
}

// New creates a new payments Service.
func New(storage storage.Storage, gateway paygate.Client, jobs jobs.Service, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		gateway: gateway,
		jobs:    jobs,
	}
}
