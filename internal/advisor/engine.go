package advisor

import (
	"fmt"
	"sort"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/intent"
	"cryptobuddy/internal/knowledge"
)

// NotFoundError names the coin term that could not be resolved against the
// knowledge base.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown coin: %s", e.ID)
}

// Result carries the records selected for one user turn, in answer order.
type Result struct {
	Coins []domain.CoinRecord
}

// Engine selects knowledge-base entries for an intent. Read-only: it never
// mutates the base.
type Engine struct {
	kb *knowledge.Base
}

// NewEngine creates a recommendation engine over kb.
func NewEngine(kb *knowledge.Base) *Engine {
	return &Engine{kb: kb}
}

// Recommend picks the record or records that answer the classified intent.
// Ties break by declaration order (first wins). Returns *NotFoundError when
// a referenced id is not tracked.
func (e *Engine) Recommend(it intent.Intent, ids []string) (Result, error) {
	switch it {
	case intent.SustainabilityQuery:
		// The eco answer always ranks the full table; naming a coin in the
		// question does not change the pick.
		return Result{Coins: e.bySustainability()}, nil

	case intent.PriceQuery:
		if len(ids) == 0 {
			return Result{Coins: e.kb.All()}, nil
		}
		rec, err := e.lookup(ids[0])
		if err != nil {
			return Result{}, err
		}
		return Result{Coins: []domain.CoinRecord{rec}}, nil

	case intent.ProfitabilityQuery:
		if len(ids) > 0 {
			rec, err := e.lookup(ids[0])
			if err != nil {
				return Result{}, err
			}
			return Result{Coins: []domain.CoinRecord{rec}}, nil
		}
		top, ok := e.byProfitability()
		if !ok {
			return Result{}, nil
		}
		return Result{Coins: []domain.CoinRecord{top}}, nil

	case intent.ComparisonQuery:
		if len(ids) < 2 {
			// Formatter asks the user to name two coins.
			return Result{}, nil
		}
		first, err := e.lookup(ids[0])
		if err != nil {
			return Result{}, err
		}
		second, err := e.lookup(ids[1])
		if err != nil {
			return Result{}, err
		}
		return Result{Coins: []domain.CoinRecord{first, second}}, nil
	}

	// Greeting, GeneralQuery, Unknown: nothing to select.
	return Result{}, nil
}

func (e *Engine) lookup(id string) (domain.CoinRecord, error) {
	rec, ok := e.kb.Get(id)
	if !ok {
		return domain.CoinRecord{}, &NotFoundError{ID: id}
	}
	return rec, nil
}

// bySustainability returns all records sorted by static sustainability score,
// highest first. The sort is stable, so equal scores keep declaration order.
func (e *Engine) bySustainability() []domain.CoinRecord {
	records := e.kb.All()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SustainabilityScore > records[j].SustainabilityScore
	})
	return records
}

// byProfitability returns the single top-ranked record under ProfitScore.
// A strictly-greater comparison keeps the first declared coin on ties.
func (e *Engine) byProfitability() (domain.CoinRecord, bool) {
	records := e.kb.All()
	if len(records) == 0 {
		return domain.CoinRecord{}, false
	}
	best := records[0]
	bestScore := ProfitScore(best)
	for _, rec := range records[1:] {
		if s := ProfitScore(rec); s > bestScore {
			best, bestScore = rec, s
		}
	}
	return best, true
}
