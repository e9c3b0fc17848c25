package intent

import (
	"testing"

	"cryptobuddy/internal/domain"
)

func testClassifier() *Classifier {
	return NewClassifier([]domain.CoinRecord{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC"},
		{ID: "ethereum", Name: "Ethereum", Symbol: "ETH"},
		{ID: "cardano", Name: "Cardano", Symbol: "ADA"},
		{ID: "solana", Name: "Solana", Symbol: "SOL"},
		{ID: "matic-network", Name: "Polygon", Symbol: "MATIC"},
	})
}

func TestClassifier_Classify(t *testing.T) {
	c := testClassifier()

	t.Run("sustainability question", func(t *testing.T) {
		it, ids := c.Classify("What's the most sustainable crypto?")
		if it != SustainabilityQuery {
			t.Errorf("Expected sustainability, got %s", it)
		}
		if len(ids) != 0 {
			t.Errorf("Expected no ids, got %v", ids)
		}
	})

	t.Run("comparison extracts both coins in order", func(t *testing.T) {
		it, ids := c.Classify("Compare Bitcoin and Ethereum")
		if it != ComparisonQuery {
			t.Errorf("Expected comparison, got %s", it)
		}
		if len(ids) != 2 || ids[0] != "bitcoin" || ids[1] != "ethereum" {
			t.Errorf("Expected [bitcoin ethereum], got %v", ids)
		}
	})

	t.Run("extraction order follows the text", func(t *testing.T) {
		_, ids := c.Classify("Is Ethereum better than Bitcoin?")
		if len(ids) != 2 || ids[0] != "ethereum" || ids[1] != "bitcoin" {
			t.Errorf("Expected [ethereum bitcoin], got %v", ids)
		}
	})

	t.Run("greeting short-circuits", func(t *testing.T) {
		it, _ := c.Classify("Hey, what's the price of bitcoin?")
		if it != Greeting {
			t.Errorf("Expected greeting, got %s", it)
		}
	})

	t.Run("price question with symbol", func(t *testing.T) {
		it, ids := c.Classify("how much is BTC worth right now")
		if it != PriceQuery {
			t.Errorf("Expected price, got %s", it)
		}
		if len(ids) != 1 || ids[0] != "bitcoin" {
			t.Errorf("Expected [bitcoin], got %v", ids)
		}
	})

	t.Run("symbol must be a whole word", func(t *testing.T) {
		_, ids := c.Classify("what is the optimal solution for profit")
		for _, id := range ids {
			if id == "solana" {
				t.Error("'solution' must not match SOL")
			}
		}
	})

	t.Run("polygon name maps to its slug", func(t *testing.T) {
		_, ids := c.Classify("tell me about polygon")
		if len(ids) != 1 || ids[0] != "matic-network" {
			t.Errorf("Expected [matic-network], got %v", ids)
		}
	})

	t.Run("profitability question", func(t *testing.T) {
		it, _ := c.Classify("which coin is trending with the biggest gains")
		if it != ProfitabilityQuery {
			t.Errorf("Expected profitability, got %s", it)
		}
	})

	t.Run("bare coin mention reads as price request", func(t *testing.T) {
		it, ids := c.Classify("cardano")
		if it != PriceQuery {
			t.Errorf("Expected price, got %s", it)
		}
		if len(ids) != 1 || ids[0] != "cardano" {
			t.Errorf("Expected [cardano], got %v", ids)
		}
	})

	t.Run("tie resolves to general", func(t *testing.T) {
		it, _ := c.Classify("price versus profit")
		if it != GeneralQuery {
			t.Errorf("Expected general on tie, got %s", it)
		}
	})

	t.Run("unmatched text is unknown", func(t *testing.T) {
		it, ids := c.Classify("tell me a joke about llamas")
		if it != Unknown {
			t.Errorf("Expected unknown, got %s", it)
		}
		if len(ids) != 0 {
			t.Errorf("Expected no ids, got %v", ids)
		}
	})

	t.Run("help request is general", func(t *testing.T) {
		it, _ := c.Classify("help")
		if it != GeneralQuery {
			t.Errorf("Expected general, got %s", it)
		}
	})
}

func TestIsExit(t *testing.T) {
	for _, text := range []string{"exit", "quit", "bye bye", "ok goodbye"} {
		if !IsExit(text) {
			t.Errorf("IsExit(%q) should be true", text)
		}
	}
	if IsExit("what is the price of bitcoin") {
		t.Error("Price question must not read as exit")
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("What's the PRICE, today?!")
	want := []string{"what", "s", "the", "price", "today"}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("Token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}

func TestIntent_Investment(t *testing.T) {
	investment := []Intent{SustainabilityQuery, PriceQuery, ProfitabilityQuery, ComparisonQuery}
	for _, it := range investment {
		if !it.Investment() {
			t.Errorf("%s should be investment-related", it)
		}
	}
	for _, it := range []Intent{Greeting, GeneralQuery, Unknown} {
		if it.Investment() {
			t.Errorf("%s should not be investment-related", it)
		}
	}
}
