package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobID uniquely identifies a verification job.
// It wraps uuid.UUID to provide type safety at the domain layer.
type JobID uuid.UUID

// Tier is the service level a buyer purchases. It determines the fee
// breakdown and the depth of verification performed by the scout.
type Tier string

const (
	// TierLite is the cheapest tier with a basic remote check.
	TierLite Tier = "LITE"
	// TierStandard adds an in-person inspection.
	TierStandard Tier = "STANDARD"
	// TierPlus adds authenticity checks and a detailed condition report.
	TierPlus Tier = "PLUS"
)

// Tiers lists all valid tiers.
func Tiers() []Tier { return []Tier{TierLite, TierStandard, TierPlus} }

// Marketplace identifies the listing's source marketplace.
type Marketplace string

const (
	MarketplaceFacebook Marketplace = "FACEBOOK"
	MarketplaceEbay     Marketplace = "EBAY"
	MarketplaceGumtree  Marketplace = "GUMTREE"
	MarketplaceOther    Marketplace = "OTHER"
)

// JobStatus represents the lifecycle state of a verification job.
type JobStatus string

const (
	// JobStatusCreated indicates the job is in the open pool, waiting for a scout.
	JobStatusCreated JobStatus = "CREATED"
	// JobStatusScoutAssigned indicates exactly one scout has claimed the job.
	JobStatusScoutAssigned JobStatus = "SCOUT_ASSIGNED"
	// JobStatusInProgress indicates the assigned scout has started verifying.
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	// JobStatusVerified indicates a verification report has been submitted.
	JobStatusVerified JobStatus = "VERIFIED"
	// JobStatusCompleted indicates payment has settled; terminal.
	JobStatusCompleted JobStatus = "COMPLETED"
	// JobStatusCancelled indicates the job was cancelled before completion; terminal.
	JobStatusCancelled JobStatus = "CANCELLED"
)

// ParseJobStatus converts a raw string to a JobStatus, returning an error for
// unknown values. Storage layers use it so a corrupted row never surfaces as
// a job with an impossible status.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case JobStatusCreated, JobStatusScoutAssigned, JobStatusInProgress,
		JobStatusVerified, JobStatusCompleted, JobStatusCancelled:
		return st, nil
	}

	return "", fmt.Errorf("unknown job status %q", s)
}

// Recommendation is the categorical risk bucket produced by the risk engine.
type Recommendation string

const (
	RecommendationLowRisk    Recommendation = "LOW_RISK"
	RecommendationMediumRisk Recommendation = "MEDIUM_RISK"
	RecommendationHighRisk   Recommendation = "HIGH_RISK"
)

// RiskVerdict is the output bundle of the risk engine for one listing.
// All four fields are produced together and replaced wholesale; a job never
// carries a partial verdict.
type RiskVerdict struct {
	// Score is the heuristic risk score in [0, 100].
	Score int `json:"riskScore"`
	// Signals lists triggered heuristics in check order.
	Signals []string `json:"signals"`
	// Recommendation is the categorical bucket derived from Score.
	Recommendation Recommendation `json:"recommendation"`
	// Explanation is a human-readable disclosure of how the verdict was produced.
	Explanation string `json:"explanation"`
}

// FeeBreakdown is the monetary split for a job's tier, computed once at
// creation and frozen. All amounts carry two-decimal precision and satisfy
// ScoutFee + PlatformFee == TotalFee == BaseFee.
type FeeBreakdown struct {
	BaseFee     decimal.Decimal `json:"baseFee"`
	PlatformFee decimal.Decimal `json:"platformFee"`
	ScoutFee    decimal.Decimal `json:"scoutFee"`
	TotalFee    decimal.Decimal `json:"totalFee"`
}

// Job represents a single buyer's request to have a marketplace listing
// verified by a scout. It tracks the listing attributes, the frozen fee
// breakdown, the latest risk verdict and the lifecycle status.
type Job struct {
	// ID is the unique identifier of the job.
	ID JobID `json:"id"`
	// BuyerID is the buyer who submitted the listing. Immutable after creation.
	BuyerID UserID `json:"buyerId"`
	// ScoutID is the scout assigned to the job; nil while the job is unclaimed.
	ScoutID *UserID `json:"scoutId,omitempty"`

	// Tier is the purchased service level.
	Tier Tier `json:"tier"`
	// ScoutFee is the scout's share of the total fee, frozen at creation.
	ScoutFee decimal.Decimal `json:"scoutFee"`
	// TotalFee is the amount charged to the buyer, frozen at creation.
	TotalFee decimal.Decimal `json:"totalFee"`

	// ListingURL is the marketplace listing being verified.
	ListingURL string `json:"listingUrl"`
	// Marketplace is the listing's source.
	Marketplace Marketplace `json:"marketplace"`
	// ItemTitle is the listing title as submitted by the buyer.
	ItemTitle string `json:"itemTitle"`
	// ItemPrice is the asking price of the listing; always non-negative.
	ItemPrice decimal.Decimal `json:"itemPrice"`
	// ItemPhotos holds listing photo URLs; never empty.
	ItemPhotos []string `json:"itemPhotos"`
	// SellerAccountAgeDays is the seller's account age as reported by the
	// marketplace listing, used by the risk assessment.
	SellerAccountAgeDays int `json:"sellerAccountAgeDays"`
	// Description is optional free text supplied by the buyer.
	Description string `json:"description,omitempty"`

	// Risk is the latest verdict; nil until the assessment worker has run.
	Risk *RiskVerdict `json:"risk,omitempty"`

	// Status is the current lifecycle state of the job.
	Status JobStatus `json:"status"`

	// CreatedAt is the time the job was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the job was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Assigned reports whether the job has a scout reference.
func (j *Job) Assigned() bool { return j.ScoutID != nil }
