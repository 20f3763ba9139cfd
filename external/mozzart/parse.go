package mozzart

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchodds/internal/domain/odds"
)

const (
	matchSelector = ".betting-match-as-is"
	namesSelector = ".names p"
	timeSelector  = ".time"
	priceSelector = ".odds-holder .font-cond"
)

var clubPrefixRegex = regexp.MustCompile(`\b(?:fc|afc|sc|fk|nk|rsc|kv|kvc|kaa|krc)\s+`)

// ParseMain reads the default market view. Prices appear in the order
// 1, X, 2, 1X, 12, X2, 2+ (over 2.5), 0-2 (under 2.5), 3+ (over 3.5).
func ParseMain(html string) ([]odds.Quote, error) {
	var out []odds.Quote
	err := eachMatch(html, func(home, away string, row *goquery.Selection) {
		prices := rowPrices(row)
		out = append(out, odds.Quote{
			HomeTeam: home,
			AwayTeam: away,
			Time:     text(row.Find(timeSelector).First()),
			Prices: odds.Prices{
				Home:       at(prices, 0),
				Draw:       at(prices, 1),
				Away:       at(prices, 2),
				HomeOrDraw: at(prices, 3),
				HomeOrAway: at(prices, 4),
				DrawOrAway: at(prices, 5),
				Over2_5:    at(prices, 6),
				Under2_5:   at(prices, 7),
				Over3_5:    at(prices, 8),
				GG:         odds.NotOffered,
				NG:         odds.NotOffered,
				GG3:        odds.NotOffered,
				GG4:        odds.NotOffered,
			},
		})
	})
	return out, err
}

// ParseGoals reads the both-teams-to-score view (GG, NG, GG3+, GG4+) keyed by
// MatchKey.
func ParseGoals(html string) (map[string]odds.Prices, error) {
	out := make(map[string]odds.Prices)
	err := eachMatch(html, func(home, away string, row *goquery.Selection) {
		prices := rowPrices(row)
		out[MatchKey(home, away)] = odds.Prices{
			GG:  at(prices, 0),
			NG:  at(prices, 1),
			GG3: at(prices, 2),
			GG4: at(prices, 3),
		}
	})
	return out, err
}

// MergeGoals attaches goal markets to main-view quotes by MatchKey. Quotes
// without a goals row keep NotOffered for those markets.
func MergeGoals(quotes []odds.Quote, goals map[string]odds.Prices) []odds.Quote {
	out := make([]odds.Quote, 0, len(quotes))
	for _, quote := range quotes {
		if extra, ok := goals[MatchKey(quote.HomeTeam, quote.AwayTeam)]; ok {
			quote.Prices = quote.Prices.MergeGoals(extra)
		}
		out = append(out, quote)
	}
	return out
}

// MatchKey is "home|away" after lowercasing, collapsing whitespace and
// dropping common club prefixes, so both market views agree on a match.
func MatchKey(home, away string) string {
	return normalizeName(home) + "|" + normalizeName(away)
}

func normalizeName(name string) string {
	name = strings.Join(strings.Fields(strings.ToLower(name)), " ")
	return strings.TrimSpace(clubPrefixRegex.ReplaceAllString(name, ""))
}

func eachMatch(html string, fn func(home, away string, row *goquery.Selection)) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return crerr.Wrap(err, "parse odds html")
	}
	doc.Find(matchSelector).Each(func(_ int, row *goquery.Selection) {
		names := row.Find(namesSelector)
		if names.Length() < 2 {
			return
		}
		home, away := text(names.Eq(0)), text(names.Eq(1))
		if home == "" || away == "" {
			return
		}
		fn(home, away, row)
	})
	return nil
}

func rowPrices(row *goquery.Selection) []string {
	cells := row.Find(priceSelector)
	out := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		out = append(out, odds.NormalizePrice(text(cell)))
	})
	return out
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return odds.NotOffered
}

func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
