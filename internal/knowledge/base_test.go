package knowledge

import (
	"testing"

	"cryptobuddy/internal/domain"

	"github.com/shopspring/decimal"
)

func testRecords() []domain.CoinRecord {
	return []domain.CoinRecord{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", SustainabilityScore: 3, EnergyUse: domain.CategoryHigh, MarketCap: domain.CategoryHigh},
		{ID: "ethereum", Name: "Ethereum", Symbol: "ETH", SustainabilityScore: 6, EnergyUse: domain.CategoryMedium, MarketCap: domain.CategoryHigh},
		{ID: "matic-network", Name: "Polygon", Symbol: "MATIC", SustainabilityScore: 9, EnergyUse: domain.CategoryLow, MarketCap: domain.CategoryMedium},
	}
}

func TestBase_Get(t *testing.T) {
	b := NewBase(testRecords())

	t.Run("every tracked id resolves", func(t *testing.T) {
		for _, id := range b.IDs() {
			rec, ok := b.Get(id)
			if !ok {
				t.Fatalf("Get(%q) failed", id)
			}
			if rec.SustainabilityScore < 0 || rec.SustainabilityScore > 10 {
				t.Errorf("%s: sustainability score %d out of range", id, rec.SustainabilityScore)
			}
		}
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		if _, ok := b.Get("BiTcOiN"); !ok {
			t.Error("Mixed-case lookup should succeed")
		}
	})

	t.Run("unknown id fails", func(t *testing.T) {
		if _, ok := b.Get("dogecoin"); ok {
			t.Error("Untracked id should not resolve")
		}
	})

	t.Run("records start without price", func(t *testing.T) {
		rec, _ := b.Get("bitcoin")
		if rec.HasPrice {
			t.Error("HasPrice should be false before first fetch")
		}
		if rec.Trend != domain.TrendUnknown {
			t.Errorf("Expected unknown trend, got %s", rec.Trend)
		}
	})
}

func TestBase_All_DeclarationOrder(t *testing.T) {
	b := NewBase(testRecords())
	all := b.All()
	want := []string{"bitcoin", "ethereum", "matic-network"}
	if len(all) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(all))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, all[i].ID)
		}
	}
}

func TestBase_Update(t *testing.T) {
	t.Run("positive change sets rising", func(t *testing.T) {
		b := NewBase(testRecords())
		if !b.Update("bitcoin", decimal.NewFromInt(65000), 2.0) {
			t.Fatal("Update of tracked id should succeed")
		}
		rec, _ := b.Get("bitcoin")
		if rec.Trend != domain.TrendRising {
			t.Errorf("Expected rising, got %s", rec.Trend)
		}
		if !rec.HasPrice {
			t.Error("HasPrice should be true after update")
		}
		if !rec.PriceUSD.Equal(decimal.NewFromInt(65000)) {
			t.Errorf("Price mismatch: %s", rec.PriceUSD)
		}
	})

	t.Run("negative change sets falling", func(t *testing.T) {
		b := NewBase(testRecords())
		b.Update("bitcoin", decimal.NewFromInt(60000), -2.0)
		rec, _ := b.Get("bitcoin")
		if rec.Trend != domain.TrendFalling {
			t.Errorf("Expected falling, got %s", rec.Trend)
		}
	})

	t.Run("zero change sets stable", func(t *testing.T) {
		b := NewBase(testRecords())
		b.Update("bitcoin", decimal.NewFromInt(60000), 0.0)
		rec, _ := b.Get("bitcoin")
		if rec.Trend != domain.TrendStable {
			t.Errorf("Expected stable, got %s", rec.Trend)
		}
	})

	t.Run("unknown id is rejected without mutation", func(t *testing.T) {
		b := NewBase(testRecords())
		if b.Update("dogecoin", decimal.NewFromInt(1), 5.0) {
			t.Error("Update of untracked id should fail")
		}
	})

	t.Run("static fields survive updates", func(t *testing.T) {
		b := NewBase(testRecords())
		b.Update("matic-network", decimal.NewFromFloat(0.72), 3.5)
		rec, _ := b.Get("matic-network")
		if rec.SustainabilityScore != 9 || rec.EnergyUse != domain.CategoryLow {
			t.Error("Static fields must not change on update")
		}
	})
}
