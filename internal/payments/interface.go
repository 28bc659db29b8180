package payments

import (
	"context"
	"safescout/pkg/domain"
)

// CheckoutIntent is what the buyer's client needs to confirm the payment.
type CheckoutIntent struct {
	Payment      *domain.Payment `json:"payment"`
	ClientSecret string          `json:"clientSecret"`
}

//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Service interface {
	// CreateIntent opens (or re-opens) a manual-capture payment intent for a
	// job owned by the acting buyer. The charge and its split come from the
	// job's frozen fee breakdown.
	CreateIntent(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*CheckoutIntent, error)
	// Release captures the held funds of a VERIFIED job and completes it.
	Release(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error)
	// Void cancels the authorization hold of a cancelled job's payment.
	Void(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error)
	// PaymentByJobID returns the payment record of a job visible to the actor.
	PaymentByJobID(ctx context.Context, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error)
}
