package flashscore

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchodds/internal/domain/fixture"
)

var (
	midParamRegex  = regexp.MustCompile(`mid=([^&#]+)`)
	matchPathRegex = regexp.MustCompile(`/match/([^/?#]+)`)
)

const (
	listRowSelector   = ".headerLeague__wrapper, .event__match"
	participantLogoSe = `img[data-testid="wcl-participantLogo"]`
)

// ParseList walks the live-scores page in document order. League headers set
// the current "Country: League" label, which applies to the match rows that
// follow it. Rows whose label keep rejects, or that lack an ID or a team,
// are skipped.
func ParseList(html string, keep func(label string) bool) ([]fixture.Fixture, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, crerr.Wrap(err, "parse match list html")
	}

	var (
		country string
		name    string
		out     []fixture.Fixture
	)
	doc.Find(listRowSelector).Each(func(_ int, el *goquery.Selection) {
		if el.HasClass("headerLeague__wrapper") {
			country = text(el.Find(".headerLeague__category-text").First())
			name = text(el.Find(".headerLeague__title-text").First())
			return
		}

		label := country + ": " + name
		if keep != nil && !keep(label) {
			return
		}

		href, _ := el.Find("a.eventRowLink").First().Attr("href")
		id := MatchIDFromURL(href)
		home := participant(el, ".event__homeParticipant")
		away := participant(el, ".event__awayParticipant")
		if id == "" || home.Name == "" || away.Name == "" {
			return
		}

		url := href
		if url == "" {
			url = "/match/" + id + "/"
		}
		out = append(out, fixture.Fixture{
			ID:       id,
			League:   label,
			HomeTeam: home,
			AwayTeam: away,
			Time:     firstText(el, ".event__stage--block", ".event__time"),
			URL:      url,
			Score:    joinScore(text(el.Find(".event__score--home").First()), text(el.Find(".event__score--away").First())),
		})
	})
	return out, nil
}

// MatchIDFromURL extracts the fixture ID from a mid= query parameter or a
// /match/<id>/ path.
func MatchIDFromURL(href string) string {
	if m := midParamRegex.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	if m := matchPathRegex.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return ""
}

func participant(row *goquery.Selection, selector string) fixture.Team {
	block := row.Find(selector).First()
	name := text(block.Find(".wcl-name_jjfMf").First())
	if name == "" {
		name = text(block)
	}
	logo, _ := block.Find(participantLogoSe).First().Attr("src")
	return fixture.Team{Name: name, Logo: logo}
}

func joinScore(home, away string) string {
	if home == "" || away == "" {
		return fixture.ScoreNotStarted
	}
	return home + "-" + away
}

func firstText(sel *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		if value := text(sel.Find(selector).First()); value != "" {
			return value
		}
	}
	return ""
}

func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
