// Package pricing computes the fee breakdown for verification tiers. Fees are
// frozen onto the job at creation, so later price changes never affect
// existing jobs.
package pricing

import (
	"safescout/pkg/domain"
	"safescout/pkg/serrors"

	"github.com/shopspring/decimal"
)

// tierPricing pairs a tier's flat base fee with the platform's cut of it.
type tierPricing struct {
	baseFee            decimal.Decimal
	platformMultiplier decimal.Decimal
}

var tiers = map[domain.Tier]tierPricing{
	domain.TierLite: {
		baseFee:            decimal.NewFromInt(19),
		platformMultiplier: decimal.RequireFromString("0.25"),
	},
	domain.TierStandard: {
		baseFee:            decimal.NewFromInt(39),
		platformMultiplier: decimal.RequireFromString("0.35"),
	},
	domain.TierPlus: {
		baseFee:            decimal.NewFromInt(69),
		platformMultiplier: decimal.RequireFromString("0.40"),
	},
}

// Quote returns the fee breakdown for the given tier. The scout fee is the
// remainder after the platform's cut, so the parts always sum to the base fee
// exactly.
func Quote(tier domain.Tier) (domain.FeeBreakdown, error) {
	p, ok := tiers[tier]
	if !ok {
		return domain.FeeBreakdown{}, serrors.With(serrors.ErrBadRequest, "unknown tier: %s", tier)
	}

	platformFee := p.baseFee.Mul(p.platformMultiplier)
	scoutFee := p.baseFee.Sub(platformFee)

	return domain.FeeBreakdown{
		BaseFee:     p.baseFee,
		PlatformFee: platformFee,
		ScoutFee:    scoutFee,
		TotalFee:    p.baseFee,
	}, nil
}
