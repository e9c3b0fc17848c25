package advisor

import "cryptobuddy/internal/domain"

// Profitability ranking weights. These are policy knobs, not derived
// constants; tune them here without touching the ranking code.
const (
	// WeightSustainability scales the normalized (0..1) sustainability score.
	WeightSustainability = 1.0
	// WeightMagnitude scales the absolute 24h change percentage.
	WeightMagnitude = 0.1
)

// TrendWeights orders trend directions: rising > stable > unknown > falling.
var TrendWeights = map[domain.Trend]float64{
	domain.TrendRising:  2.0,
	domain.TrendStable:  1.0,
	domain.TrendUnknown: 0.5,
	domain.TrendFalling: 0.0,
}

// ProfitScore blends sustainability, trend direction and move magnitude into
// a single ranking value.
func ProfitScore(rec domain.CoinRecord) float64 {
	score := WeightSustainability * float64(rec.SustainabilityScore) / 10.0
	score += TrendWeights[rec.Trend]
	change := rec.Change24hPct
	if change < 0 {
		change = -change
	}
	score += WeightMagnitude * change
	return score
}
