package odds

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NotOffered is the price sentinel for markets the bookmaker does not list.
const NotOffered = "-"

// Prices holds one bookmaker row. Every value is a decimal string such as
// "1.85" or NotOffered.
type Prices struct {
	Home       string
	Draw       string
	Away       string
	HomeOrDraw string
	HomeOrAway string
	DrawOrAway string
	Over2_5    string
	Under2_5   string
	Over3_5    string
	GG         string
	NG         string
	GG3        string
	GG4        string
}

// EmptyPrices returns a row with every market not offered.
func EmptyPrices() Prices {
	return Prices{
		Home: NotOffered, Draw: NotOffered, Away: NotOffered,
		HomeOrDraw: NotOffered, HomeOrAway: NotOffered, DrawOrAway: NotOffered,
		Over2_5: NotOffered, Under2_5: NotOffered, Over3_5: NotOffered,
		GG: NotOffered, NG: NotOffered, GG3: NotOffered, GG4: NotOffered,
	}
}

// Normalize rewrites every market through NormalizePrice.
func (p Prices) Normalize() Prices {
	for _, field := range p.fields() {
		*field = NormalizePrice(*field)
	}
	return p
}

// Offered counts the markets carrying a usable price.
func (p Prices) Offered() int {
	count := 0
	for _, field := range p.fields() {
		if _, ok := ParsePrice(*field); ok {
			count++
		}
	}
	return count
}

// MergeGoals copies the both-teams-to-score markets from other.
func (p Prices) MergeGoals(other Prices) Prices {
	p.GG = other.GG
	p.NG = other.NG
	p.GG3 = other.GG3
	p.GG4 = other.GG4
	return p
}

// Favourite returns "1", "X" or "2" for the lowest 1X2 price, or "" when the
// row has no full 1X2 market.
func (p Prices) Favourite() string {
	outcomes := []struct {
		label string
		raw   string
	}{{"1", p.Home}, {"X", p.Draw}, {"2", p.Away}}

	best := ""
	var bestPrice decimal.Decimal
	for _, outcome := range outcomes {
		price, ok := ParsePrice(outcome.raw)
		if !ok {
			return ""
		}
		if best == "" || price.LessThan(bestPrice) {
			best = outcome.label
			bestPrice = price
		}
	}
	return best
}

func (p *Prices) fields() []*string {
	return []*string{
		&p.Home, &p.Draw, &p.Away,
		&p.HomeOrDraw, &p.HomeOrAway, &p.DrawOrAway,
		&p.Over2_5, &p.Under2_5, &p.Over3_5,
		&p.GG, &p.NG, &p.GG3, &p.GG4,
	}
}

// ParsePrice parses a decimal price. Comma decimal separators are accepted.
// Prices at or below 1 are not valid odds.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" || raw == NotOffered {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || !price.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, false
	}
	return price, true
}

// NormalizePrice renders raw with two decimals, or NotOffered when it is not a price.
func NormalizePrice(raw string) string {
	price, ok := ParsePrice(raw)
	if !ok {
		return NotOffered
	}
	return price.StringFixed(2)
}

// Quote is one bookmaker offer, with no guaranteed link to a fixture.
type Quote struct {
	HomeTeam string
	AwayTeam string
	Time     string
	Prices   Prices
}

// Entry is a quote reconciled to a fixture.
type Entry struct {
	FixtureID     string
	FixtureHome   string
	FixtureAway   string
	BookmakerHome string
	BookmakerAway string
	Prices        Prices
	ScrapedAt     time.Time
}

type ReconcileResult struct {
	Matched       []Entry
	Unmatched     []Quote
	TotalQuotes   int
	TotalFixtures int
	MatchedCount  int
}
