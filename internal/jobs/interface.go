package jobs

import (
	"context"
	"safescout/pkg/domain"

	"github.com/shopspring/decimal"
)

// CreateReq carries the buyer-supplied listing attributes for a new job.
// Fees and risk fields are always computed server-side.
type CreateReq struct {
	Tier                 domain.Tier
	ListingURL           string
	Marketplace          domain.Marketplace
	ItemTitle            string
	ItemPrice            decimal.Decimal
	ItemPhotos           []string
	SellerAccountAgeDays int
	Description          string
}

// ReportReq carries a scout's findings for the verification report.
type ReportReq struct {
	ConditionGrade string
	Defects        []string
	MarketPriceMin decimal.Decimal
	MarketPriceMax decimal.Decimal
}

//go:generate mockgen -package mockjobs -source=interface.go -destination=mock/mockjobs.go *
type Service interface {
	// Create validates the listing, freezes the tier's fee breakdown onto a new
	// job and enqueues its risk assessment. Only buyers may create jobs.
	Create(ctx context.Context, actor domain.Identity, req CreateReq) (*domain.Job, error)
	// JobByID returns a job visible to the actor: its buyer, its assigned
	// scout, or an admin.
	JobByID(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error)
	// BuyerJobs pages through the buyer's own jobs, most recent first.
	BuyerJobs(ctx context.Context, buyerID domain.UserID, cursor string, limit uint) ([]domain.Job, string, error)
	// ScoutListings pages through the unclaimed pool plus the scout's claimed
	// backlog, most recent first.
	ScoutListings(ctx context.Context, scoutID domain.UserID, cursor string, limit uint) ([]domain.Job, string, error)
	// Assign claims a CREATED job for the acting scout. Exactly one of any
	// concurrent claims succeeds; the rest receive a conflict error.
	Assign(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error)
	// Start moves the actor's assigned job into IN_PROGRESS.
	Start(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error)
	// SubmitReport stores the scout's verification report and moves the job to
	// VERIFIED in the same transaction.
	SubmitReport(ctx context.Context, actor domain.Identity, id domain.JobID, req ReportReq) (*domain.Report, error)
	// Report returns the verification report of a job visible to the actor.
	Report(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Report, error)
	// Cancel moves a non-terminal job to CANCELLED. Only the owning buyer or
	// an admin may cancel.
	Cancel(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error)
	// Complete moves a VERIFIED job to COMPLETED. Driven by the payment
	// subsystem when funds settle.
	Complete(ctx context.Context, id domain.JobID) (*domain.Job, error)
}
