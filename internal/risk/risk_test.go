package risk_test

import (
	"safescout/internal/risk"
	"safescout/pkg/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestEngine() risk.Engine {
	return risk.New(risk.Options{ReferenceMarketPrice: decimal.NewFromInt(1000)})
}

func TestEngine_Assess_AllSignals(t *testing.T) {
	t.Parallel()

	verdict := newTestEngine().Assess(risk.Input{
		Title:                "iPhone 15 Pro, sealed",
		Price:                decimal.NewFromInt(500),
		Description:          "brand new, urgent sale",
		SellerAccountAgeDays: 10,
		PhotoCount:           1,
	})

	require.Equal(t, 80, verdict.Score)
	require.Equal(t, []string{
		"Price significantly below market average",
		"Seller account is new",
		"Limited photo evidence",
	}, verdict.Signals)
	require.Equal(t, domain.RecommendationHighRisk, verdict.Recommendation)
	require.NotEmpty(t, verdict.Explanation)
}

func TestEngine_Assess_NoSignals(t *testing.T) {
	t.Parallel()

	verdict := newTestEngine().Assess(risk.Input{
		Price:                decimal.NewFromInt(900),
		SellerAccountAgeDays: 400,
		PhotoCount:           5,
	})

	require.Equal(t, 20, verdict.Score)
	require.Empty(t, verdict.Signals)
	require.Equal(t, domain.RecommendationLowRisk, verdict.Recommendation)
}

func TestEngine_Assess_Boundaries(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	tests := []struct {
		name string
		in   risk.Input
		want struct {
			score          int
			recommendation domain.Recommendation
		}
	}{
		{
			// exactly 0.6x the reference price does not trigger the price signal
			name: "price exactly at threshold",
			in: risk.Input{
				Price:                decimal.NewFromInt(600),
				SellerAccountAgeDays: 400,
				PhotoCount:           5,
			},
			want: struct {
				score          int
				recommendation domain.Recommendation
			}{20, domain.RecommendationLowRisk},
		},
		{
			// seller exactly 30 days old is not "new"
			name: "seller age at boundary",
			in: risk.Input{
				Price:                decimal.NewFromInt(900),
				SellerAccountAgeDays: 30,
				PhotoCount:           5,
			},
			want: struct {
				score          int
				recommendation domain.Recommendation
			}{20, domain.RecommendationLowRisk},
		},
		{
			// three photos is enough evidence, two is not
			name: "photo count just above threshold",
			in: risk.Input{
				Price:                decimal.NewFromInt(900),
				SellerAccountAgeDays: 400,
				PhotoCount:           3,
			},
			want: struct {
				score          int
				recommendation domain.Recommendation
			}{20, domain.RecommendationLowRisk},
		},
		{
			// 20+30=50 sits inside the medium band (41..70)
			name: "underpriced only is medium risk",
			in: risk.Input{
				Price:                decimal.NewFromInt(100),
				SellerAccountAgeDays: 400,
				PhotoCount:           5,
			},
			want: struct {
				score          int
				recommendation domain.Recommendation
			}{50, domain.RecommendationMediumRisk},
		},
		{
			// 20+30+20=70 is the top of the medium band; HIGH starts strictly above 70
			name: "underpriced new seller stays medium risk",
			in: risk.Input{
				Price:                decimal.NewFromInt(500),
				SellerAccountAgeDays: 10,
				PhotoCount:           5,
			},
			want: struct {
				score          int
				recommendation domain.Recommendation
			}{70, domain.RecommendationMediumRisk},
		},
		{
			// 20+20=40 stays in the low band; MEDIUM starts strictly above 40
			name: "new seller only stays low risk",
			in: risk.Input{
				Price:                decimal.NewFromInt(900),
				SellerAccountAgeDays: 5,
				PhotoCount:           5,
			},
			want: struct {
				score          int
				recommendation domain.Recommendation
			}{40, domain.RecommendationLowRisk},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			verdict := engine.Assess(tc.in)
			require.Equal(t, tc.want.score, verdict.Score)
			require.Equal(t, tc.want.recommendation, verdict.Recommendation)
		})
	}
}

func TestEngine_Assess_Deterministic(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	in := risk.Input{
		Price:                decimal.NewFromInt(400),
		SellerAccountAgeDays: 3,
		PhotoCount:           2,
	}

	first := engine.Assess(in)
	second := engine.Assess(in)
	require.Equal(t, first, second)
	require.Equal(t, 80, first.Score)
}
