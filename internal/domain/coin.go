package domain

import "github.com/shopspring/decimal"

// Trend is the derived direction label for a coin's last 24h price move.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown" // no successful price fetch yet
)

// Category is a coarse low/medium/high bucket for static coin attributes.
type Category string

const (
	CategoryLow    Category = "low"
	CategoryMedium Category = "medium"
	CategoryHigh   Category = "high"
)

// TrendThresholdPct is the 24h change magnitude (in percent) beyond which a
// move counts as a trend rather than noise.
const TrendThresholdPct = 1.0

// TrendFromChange maps a 24h percentage change to a trend label.
func TrendFromChange(changePct float64) Trend {
	switch {
	case changePct > TrendThresholdPct:
		return TrendRising
	case changePct < -TrendThresholdPct:
		return TrendFalling
	default:
		return TrendStable
	}
}

// CoinRecord bundles the static profile and the live market fields for one
// tracked coin. Static fields are set at load time and never mutated; live
// fields are overwritten only through knowledge.Base.Update so that price,
// change and trend always come from the same fetch.
type CoinRecord struct {
	ID                  string   // market-API slug, lookup key
	Name                string   // display name
	Symbol              string   // ticker symbol (e.g. "BTC")
	SustainabilityScore int      // 0..10, static
	EnergyUse           Category // static
	MarketCap           Category // static

	// Live fields.
	PriceUSD     decimal.Decimal
	Change24hPct float64
	Trend        Trend
	HasPrice     bool // false until the first successful fetch
}
