package intent

import (
	"sort"
	"strings"

	"cryptobuddy/internal/domain"
)

// Intent is the classified purpose of a user utterance.
type Intent int

const (
	Unknown Intent = iota
	Greeting
	SustainabilityQuery
	PriceQuery
	ProfitabilityQuery
	ComparisonQuery
	GeneralQuery
)

func (i Intent) String() string {
	switch i {
	case Greeting:
		return "greeting"
	case SustainabilityQuery:
		return "sustainability"
	case PriceQuery:
		return "price"
	case ProfitabilityQuery:
		return "profitability"
	case ComparisonQuery:
		return "comparison"
	case GeneralQuery:
		return "general"
	default:
		return "unknown"
	}
}

// Investment reports whether answers for this intent carry the risk
// disclaimer.
func (i Intent) Investment() bool {
	switch i {
	case SustainabilityQuery, PriceQuery, ProfitabilityQuery, ComparisonQuery:
		return true
	}
	return false
}

// Trigger terms per intent. Kept as a plain table so the matching strategy
// can change without touching the control flow.
var greetingTerms = []string{
	"hello", "hi", "hey", "greetings", "morning", "afternoon",
	"thanks", "thank", "thx",
}

var exitTerms = []string{"exit", "quit", "bye", "goodbye", "stop", "end"}

var keywordTable = []struct {
	intent Intent
	terms  []string
}{
	{SustainabilityQuery, []string{
		"sustainable", "sustainability", "eco", "green", "environment",
		"environmental", "clean", "carbon", "renewable", "energy", "efficient",
	}},
	{PriceQuery, []string{
		"price", "prices", "cost", "worth", "value", "current", "today",
	}},
	{ProfitabilityQuery, []string{
		"profitable", "profit", "money", "earning", "earnings", "rising",
		"bull", "bullish", "gains", "returns", "trending", "momentum",
	}},
	{ComparisonQuery, []string{
		"compare", "comparison", "versus", "vs", "difference", "better",
	}},
	{GeneralQuery, []string{
		"help", "recommend", "recommendation", "suggest", "advice",
		"best", "top", "options", "commands",
	}},
}

type coinAlias struct {
	id     string
	name   string // lowercase display name, substring-matched
	symbol string // lowercase ticker, whole-word matched
}

// Classifier maps raw user text to an intent plus any coin ids mentioned in
// it. Pure keyword and substring matching; paraphrases outside the trigger
// tables fall through to Unknown.
type Classifier struct {
	coins []coinAlias
}

// NewClassifier builds a classifier that recognizes the given coins by name
// and symbol.
func NewClassifier(coins []domain.CoinRecord) *Classifier {
	aliases := make([]coinAlias, 0, len(coins))
	for _, rec := range coins {
		aliases = append(aliases, coinAlias{
			id:     strings.ToLower(rec.ID),
			name:   strings.ToLower(rec.Name),
			symbol: strings.ToLower(rec.Symbol),
		})
	}
	return &Classifier{coins: aliases}
}

// Classify normalizes text, scores it against the trigger tables and
// extracts up to two coin ids in order of appearance. Greeting terms are
// checked first and short-circuit; ties resolve to GeneralQuery; zero
// matches resolve to PriceQuery when a coin is named (a bare coin mention
// reads as a detail request) and to Unknown otherwise.
func (c *Classifier) Classify(text string) (Intent, []string) {
	tokens := tokenSet(Tokenize(text))
	ids := c.extractCoins(text)

	if matchCount(tokens, greetingTerms) > 0 {
		return Greeting, ids
	}

	best := Unknown
	bestScore := 0
	tie := false
	for _, row := range keywordTable {
		score := matchCount(tokens, row.terms)
		if score > bestScore {
			best, bestScore, tie = row.intent, score, false
		} else if score == bestScore && score > 0 {
			tie = true
		}
	}

	switch {
	case bestScore == 0 && len(ids) > 0:
		return PriceQuery, ids
	case bestScore == 0:
		return Unknown, ids
	case tie:
		return GeneralQuery, ids
	}
	return best, ids
}

// IsExit reports whether the user asked to end the conversation.
func IsExit(text string) bool {
	return matchCount(tokenSet(Tokenize(text)), exitTerms) > 0
}

// Tokenize lowercases text, strips punctuation and splits it into terms.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z'
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

func matchCount(tokens map[string]bool, terms []string) int {
	n := 0
	for _, term := range terms {
		if tokens[term] {
			n++
		}
	}
	return n
}

// extractCoins scans text for known coin names (substring) and symbols
// (whole word), returning at most two ids ordered by first appearance.
func (c *Classifier) extractCoins(text string) []string {
	lower := strings.ToLower(text)

	type hit struct {
		id  string
		pos int
	}
	var hits []hit
	for _, alias := range c.coins {
		pos := strings.Index(lower, alias.name)
		if symPos := indexWord(lower, alias.symbol); symPos >= 0 && (pos < 0 || symPos < pos) {
			pos = symPos
		}
		if pos >= 0 {
			hits = append(hits, hit{id: alias.id, pos: pos})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	ids := make([]string, 0, 2)
	for _, h := range hits {
		ids = append(ids, h.id)
		if len(ids) == 2 {
			break
		}
	}
	return ids
}

// indexWord finds word in s bounded by non-word runes, so short symbols like
// "sol" do not match inside longer words.
func indexWord(s, word string) int {
	if word == "" {
		return -1
	}
	for from := 0; from < len(s); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		i += from
		before := i == 0 || !isWordRune(rune(s[i-1]))
		afterIdx := i + len(word)
		after := afterIdx >= len(s) || !isWordRune(rune(s[afterIdx]))
		if before && after {
			return i
		}
		from = i + 1
	}
	return -1
}
