package knowledge

import (
	"strings"

	"cryptobuddy/internal/domain"

	"github.com/shopspring/decimal"
)

// Base is the in-memory knowledge base of tracked coins. It is built once at
// startup and owned by the chat pipeline; access is strictly sequential, so
// no locking is needed. The tracked set never changes after construction.
type Base struct {
	order []string
	coins map[string]*domain.CoinRecord
}

// NewBase builds a knowledge base from the static coin table. Declaration
// order is preserved and used for ranking tie-breaks. Live fields start
// empty with an unknown trend.
func NewBase(records []domain.CoinRecord) *Base {
	b := &Base{
		order: make([]string, 0, len(records)),
		coins: make(map[string]*domain.CoinRecord, len(records)),
	}
	for _, rec := range records {
		rec.Trend = domain.TrendUnknown
		rec.HasPrice = false
		id := strings.ToLower(rec.ID)
		if _, dup := b.coins[id]; dup {
			continue
		}
		stored := rec
		b.coins[id] = &stored
		b.order = append(b.order, id)
	}
	return b
}

// Get returns a copy of the record for id (case-insensitive).
func (b *Base) Get(id string) (domain.CoinRecord, bool) {
	rec, ok := b.coins[strings.ToLower(id)]
	if !ok {
		return domain.CoinRecord{}, false
	}
	return *rec, true
}

// All returns copies of every record in declaration order.
func (b *Base) All() []domain.CoinRecord {
	out := make([]domain.CoinRecord, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.coins[id])
	}
	return out
}

// IDs returns the tracked coin ids in declaration order.
func (b *Base) IDs() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of tracked coins.
func (b *Base) Len() int {
	return len(b.order)
}

// Update overwrites the live fields of one record as a single unit: price,
// 24h change and the trend derived from that same change. Returns false when
// the id is not tracked. Static fields are never touched.
func (b *Base) Update(id string, price decimal.Decimal, changePct float64) bool {
	rec, ok := b.coins[strings.ToLower(id)]
	if !ok {
		return false
	}
	rec.PriceUSD = price
	rec.Change24hPct = changePct
	rec.Trend = domain.TrendFromChange(changePct)
	rec.HasPrice = true
	return true
}
