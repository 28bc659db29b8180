// Package risk scores marketplace listings with a deterministic heuristic.
// The same input always yields the same verdict, so assessments can be
// re-run safely.
package risk

import (
	"safescout/internal/config"
	"safescout/pkg/domain"

	"github.com/shopspring/decimal"
)

const (
	baseScore = 20
	maxScore  = 95

	// score thresholds for the recommendation bands
	highRiskAbove   = 70
	mediumRiskAbove = 40

	// signal triggers
	underpricedRatio  = "0.6"
	newSellerMaxDays  = 30
	lowPhotoThreshold = 2
)

// signal wording is part of the API surface; clients match on it.
const (
	signalUnderpriced = "Price significantly below market average"
	signalNewSeller   = "Seller account is new"
	signalFewPhotos   = "Limited photo evidence"
)

// Explanation is disclosed verbatim with every verdict until a model-backed
// assessment replaces the heuristic.
const explanation = "Heuristic risk assessment based on listing price, seller account age and photo evidence."

// Options configure the scoring baseline.
type Options struct {
	// ReferenceMarketPrice is the price listings are compared against when
	// checking for too-good-to-be-true offers.
	ReferenceMarketPrice decimal.Decimal
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ReferenceMarketPrice: decimal.NewFromFloat(cfg.Risk.ReferenceMarketPrice),
	}
}

// Input carries the listing attributes available to the engine. Title and
// Description are not inspected by the current heuristic; they are part of
// the contract so a content-based signal can be added without changing
// callers.
type Input struct {
	Title                string
	Price                decimal.Decimal
	Description          string
	SellerAccountAgeDays int
	PhotoCount           int
}

// Engine scores listings against a configured market price baseline.
type Engine struct {
	options Options
}

// Assess runs the heuristic over the given listing attributes and produces a
// verdict. The score starts at a baseline, each triggered signal adds a fixed
// amount, and the total is capped.
func (e Engine) Assess(in Input) domain.RiskVerdict {
	score := baseScore
	var signals []string

	threshold := e.options.ReferenceMarketPrice.Mul(decimal.RequireFromString(underpricedRatio))
	if in.Price.LessThan(threshold) {
		signals = append(signals, signalUnderpriced)
		score += 30
	}
	if in.SellerAccountAgeDays < newSellerMaxDays {
		signals = append(signals, signalNewSeller)
		score += 20
	}
	if in.PhotoCount <= lowPhotoThreshold {
		signals = append(signals, signalFewPhotos)
		score += 10
	}

	if score > maxScore {
		score = maxScore
	}

	recommendation := domain.RecommendationLowRisk
	switch {
	case score > highRiskAbove:
		recommendation = domain.RecommendationHighRisk
	case score > mediumRiskAbove:
		recommendation = domain.RecommendationMediumRisk
	}

	return domain.RiskVerdict{
		Score:          score,
		Signals:        signals,
		Recommendation: recommendation,
		Explanation:    explanation,
	}
}

// New creates an Engine with the given options.
func New(options Options) Engine {
	return Engine{options: options}
}
