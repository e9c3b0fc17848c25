package advisor

import (
	"fmt"
	"strings"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/intent"
)

// Disclaimer is appended to every investment-related answer.
const Disclaimer = "⚠️ Crypto investments are highly risky and volatile. This is educational information only - always do your own research before investing."

// EcoScoreFloor is the minimum sustainability score for a coin to be listed
// as an eco-friendly runner-up.
const EcoScoreFloor = 7

// Format renders the selected records for an intent into the reply string.
// Pure function: no I/O, no mutation.
func Format(it intent.Intent, res Result) string {
	var b strings.Builder

	switch it {
	case intent.Greeting:
		b.WriteString("👋 Hello! I'm CryptoBuddy, your crypto advisor with live price data. " +
			"Ask me about sustainable coins, current prices, profitable trends, or compare two coins.")

	case intent.SustainabilityQuery:
		formatSustainability(&b, res.Coins)

	case intent.PriceQuery:
		formatPrice(&b, res.Coins)

	case intent.ProfitabilityQuery:
		formatProfitability(&b, res.Coins)

	case intent.ComparisonQuery:
		formatComparison(&b, res.Coins)

	case intent.GeneralQuery:
		b.WriteString(helpText)

	default:
		b.WriteString("🤔 I didn't catch that. " + helpText)
	}

	if it.Investment() {
		b.WriteString("\n\n")
		b.WriteString(Disclaimer)
	}
	return b.String()
}

// UnknownCoin builds the clarification for an unresolved coin term.
func UnknownCoin(term string, known []domain.CoinRecord) string {
	names := make([]string, 0, len(known))
	for _, rec := range known {
		names = append(names, fmt.Sprintf("%s (%s)", rec.Name, rec.Symbol))
	}
	return fmt.Sprintf("❓ I don't track %q. I currently know: %s.", term, strings.Join(names, ", "))
}

const helpText = "🤖 I can help you with:\n" +
	"• 🌱 Sustainable / eco-friendly coins\n" +
	"• 💰 Current prices (live data)\n" +
	"• 📈 Profitable / trending coins\n" +
	"• 🔍 Comparing two coins (\"compare bitcoin and ethereum\")\n" +
	"Just ask naturally."

func formatSustainability(b *strings.Builder, coins []domain.CoinRecord) {
	if len(coins) == 0 {
		b.WriteString("I have no sustainability data loaded right now.")
		return
	}
	top := coins[0]
	fmt.Fprintf(b, "🌱 For sustainability, %s (%s) is the strongest pick with a score of %d/10 and %s energy use.",
		top.Name, top.Symbol, top.SustainabilityScore, top.EnergyUse)

	var others []string
	for _, rec := range coins[1:] {
		if rec.SustainabilityScore >= EcoScoreFloor {
			others = append(others, fmt.Sprintf("%s (%d/10)", rec.Name, rec.SustainabilityScore))
		}
	}
	if len(others) > 0 {
		fmt.Fprintf(b, "\nOther eco-friendly options: %s.", strings.Join(others, ", "))
	}
}

func formatPrice(b *strings.Builder, coins []domain.CoinRecord) {
	switch len(coins) {
	case 0:
		b.WriteString("I have no price data to show.")
	case 1:
		writeCoinCard(b, coins[0])
	default:
		b.WriteString("📊 Current prices:\n")
		for _, rec := range coins {
			fmt.Fprintf(b, "• %s (%s): %s\n", rec.Name, rec.Symbol, priceLine(rec))
		}
	}
}

func formatProfitability(b *strings.Builder, coins []domain.CoinRecord) {
	if len(coins) == 0 {
		b.WriteString("I can't rank profitability right now - no coins are loaded.")
		return
	}
	rec := coins[0]
	fmt.Fprintf(b, "📈 %s (%s) looks the strongest right now: trend %s", rec.Name, rec.Symbol, rec.Trend)
	if rec.HasPrice {
		fmt.Fprintf(b, ", 24h change %+.2f%% at $%s", rec.Change24hPct, rec.PriceUSD.StringFixed(2))
	}
	fmt.Fprintf(b, ". Sustainability: %d/10.", rec.SustainabilityScore)
}

func formatComparison(b *strings.Builder, coins []domain.CoinRecord) {
	if len(coins) < 2 {
		b.WriteString("🔍 To compare coins, name two of them - for example \"compare bitcoin and ethereum\".")
		return
	}
	fmt.Fprintf(b, "🔍 %s vs %s:\n\n", coins[0].Name, coins[1].Name)
	writeCoinCard(b, coins[0])
	b.WriteString("\n\n")
	writeCoinCard(b, coins[1])
}

func writeCoinCard(b *strings.Builder, rec domain.CoinRecord) {
	fmt.Fprintf(b, "📊 %s (%s)\n", rec.Name, rec.Symbol)
	fmt.Fprintf(b, "💰 Price: %s\n", priceLine(rec))
	fmt.Fprintf(b, "📈 Trend: %s\n", rec.Trend)
	fmt.Fprintf(b, "🏢 Market Cap: %s\n", rec.MarketCap)
	fmt.Fprintf(b, "⚡ Energy Use: %s\n", rec.EnergyUse)
	fmt.Fprintf(b, "🌱 Sustainability: %d/10", rec.SustainabilityScore)
}

func priceLine(rec domain.CoinRecord) string {
	if !rec.HasPrice {
		return "not fetched yet"
	}
	emoji := "🟢"
	if rec.Change24hPct < 0 {
		emoji = "🔴"
	}
	return fmt.Sprintf("$%s %s%+.2f%%", rec.PriceUSD.StringFixed(2), emoji, rec.Change24hPct)
}
