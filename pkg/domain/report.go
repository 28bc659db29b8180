package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportID uniquely identifies a verification report.
type ReportID uuid.UUID

// ReportRecommendation is the scout's advice to the buyer after inspection.
type ReportRecommendation string

const (
	ReportRecommendationBuy       ReportRecommendation = "BUY"
	ReportRecommendationNegotiate ReportRecommendation = "NEGOTIATE"
	ReportRecommendationReject    ReportRecommendation = "REJECT"
)

// Report is the outcome of a scout's inspection of a listing. Submitting a
// report moves the owning job to VERIFIED.
type Report struct {
	// ID is the unique identifier of the report.
	ID ReportID `json:"id"`
	// JobID references the job this report verifies; one report per job.
	JobID JobID `json:"jobId"`
	// ScoutID is the scout who performed the inspection.
	ScoutID UserID `json:"scoutId"`

	// ConditionGrade is the scout's grade for the item's condition.
	ConditionGrade string `json:"conditionGrade"`
	// Defects lists issues found during inspection.
	Defects []string `json:"defects"`
	// MarketPriceMin and MarketPriceMax bound the scout's market-price estimate.
	MarketPriceMin decimal.Decimal `json:"marketPriceMin"`
	MarketPriceMax decimal.Decimal `json:"marketPriceMax"`

	// Summary is generated text describing the verification outcome.
	Summary string `json:"summary"`
	// ConditionAssessment is generated text describing the item's condition.
	ConditionAssessment string `json:"conditionAssessment"`
	// AuthenticityCheck is generated text describing authenticity findings.
	AuthenticityCheck string `json:"authenticityCheck"`
	// Recommendation is the scout's advice to the buyer.
	Recommendation ReportRecommendation `json:"recommendation"`

	// CreatedAt is the time the report was submitted.
	CreatedAt time.Time `json:"createdAt"`
}
