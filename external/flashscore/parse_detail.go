package flashscore

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchodds/internal/domain/fixture"
)

const (
	matchRowSelector = `[class*="h2h__row"], [class*="rows__row"]`
	rowHomeSelector  = `[class*="homeParticipant"], [class*="home"]`
	rowAwaySelector  = `[class*="awayParticipant"], [class*="away"]`
	rowScoreSelector = `[class*="score"], [class*="result"]`
	rowWDLSelector   = `[class*="wdl"], [class*="form"], [class*="icon"]`
)

var (
	digitsOnlyRegex = regexp.MustCompile(`^\d+$`)
	scorePairRegex  = regexp.MustCompile(`(\d+)\s*[-:]\s*(\d+)`)
)

func newDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, crerr.Wrap(err, "parse match detail html")
	}
	return doc, nil
}

// ParseSummary reads participants, start time and score from the match page.
// A page without both participant names is reported as fixture.ErrNotFound.
func ParseSummary(html string) (fixture.Detail, error) {
	doc, err := newDocument(html)
	if err != nil {
		return fixture.Detail{}, err
	}

	home := doc.Find(".duelParticipant__home").First()
	away := doc.Find(".duelParticipant__away").First()
	detail := fixture.Detail{
		HomeTeam: fixture.Team{Name: text(home.Find(".participant__participantName").First())},
		AwayTeam: fixture.Team{Name: text(away.Find(".participant__participantName").First())},
		Time:     text(doc.Find(".duelParticipant__startTime").First()),
		Score:    fixture.ScoreNotStarted,
	}
	if detail.HomeTeam.Name == "" || detail.AwayTeam.Name == "" {
		return fixture.Detail{}, fixture.ErrNotFound
	}
	detail.HomeTeam.Logo, _ = home.Find("img").First().Attr("src")
	detail.AwayTeam.Logo, _ = away.Find("img").First().Attr("src")

	spans := doc.Find(".detailScore__wrapper").First().Find("span")
	if spans.Length() >= 2 {
		homeGoals, awayGoals := text(spans.First()), text(spans.Last())
		if homeGoals != "" && awayGoals != "" {
			detail.Score = homeGoals + "-" + awayGoals
		}
	}
	return detail, nil
}

// ParseStandings finds the table rows for both teams. A row belongs to a team
// when either name contains the other, case-insensitively.
func ParseStandings(html, homeName, awayName string) (fixture.Standings, error) {
	doc, err := newDocument(html)
	if err != nil {
		return fixture.Standings{}, err
	}

	homeLower, awayLower := strings.ToLower(homeName), strings.ToLower(awayName)
	var out fixture.Standings
	doc.Find(".ui-table__row").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		team := strings.ToLower(text(row.Find(".tableCellParticipant__name").First()))
		if team == "" {
			return true
		}
		isHome := containsEither(team, homeLower)
		isAway := containsEither(team, awayLower)
		if !isHome && !isAway {
			return true
		}

		cells := row.Find(".table__cell--value")
		if cells.Length() < 7 {
			return true
		}
		goalsFor, goalsAgainst := splitGoals(text(cells.Eq(4)))
		standing := &fixture.Standing{
			Position:     atoi(strings.TrimSuffix(text(row.Find(".tableCellRank").First()), ".")),
			Played:       atoi(text(cells.Eq(0))),
			Won:          atoi(text(cells.Eq(1))),
			Drawn:        atoi(text(cells.Eq(2))),
			Lost:         atoi(text(cells.Eq(3))),
			GoalsFor:     goalsFor,
			GoalsAgainst: goalsAgainst,
			Points:       atoi(text(cells.Eq(6))),
		}
		if isHome && out.Home == nil {
			out.Home = standing
		}
		if isAway && out.Away == nil {
			out.Away = standing
		}
		return out.Home == nil || out.Away == nil
	})
	return out, nil
}

// ParseH2H keeps rows in which both teams took part, deduplicated and capped.
func ParseH2H(html, homeName, awayName string) ([]fixture.H2HEntry, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	homeLower, awayLower := strings.ToLower(homeName), strings.ToLower(awayName)
	var rows []fixture.H2HEntry
	doc.Find(matchRowSelector).Each(func(_ int, row *goquery.Selection) {
		entry := fixture.H2HEntry{
			Date:     text(row.Find(`[class*="date"]`).First()),
			HomeTeam: text(row.Find(rowHomeSelector).First()),
			AwayTeam: text(row.Find(rowAwaySelector).First()),
			Score:    rowScore(row.Find(rowScoreSelector).First()),
		}
		if entry.HomeTeam == "" || entry.AwayTeam == "" || entry.Score == "" {
			return
		}
		rowHome, rowAway := strings.ToLower(entry.HomeTeam), strings.ToLower(entry.AwayTeam)
		hasHome := strings.Contains(rowHome, homeLower) || strings.Contains(rowAway, homeLower)
		hasAway := strings.Contains(rowHome, awayLower) || strings.Contains(rowAway, awayLower)
		if hasHome && hasAway {
			rows = append(rows, entry)
		}
	})
	return fixture.UniqueH2H(rows), nil
}

// ParseForm reads a team's recent results from its HOME or AWAY sub-tab. The
// outcome comes from the W/D/L badge when present, otherwise from the score
// as seen by the team.
func ParseForm(html string, isHome bool) ([]fixture.FormEntry, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	var rows []fixture.FormEntry
	doc.Find(matchRowSelector).Each(func(_ int, row *goquery.Selection) {
		homeTeam := text(row.Find(rowHomeSelector).First())
		awayTeam := text(row.Find(rowAwaySelector).First())
		if homeTeam == "" || awayTeam == "" {
			return
		}

		homeGoals, awayGoals := rowGoals(row.Find(rowScoreSelector).First())
		badge := row.Find(rowWDLSelector).First()
		badgeClass, _ := badge.Attr("class")

		opponent := awayTeam
		if !isHome {
			opponent = homeTeam
		}
		rows = append(rows, fixture.FormEntry{
			Date:     text(row.Find(`[class*="date"]`).First()),
			Opponent: opponent,
			Result:   strconv.Itoa(homeGoals) + "-" + strconv.Itoa(awayGoals),
			Outcome:  outcome(strings.ToUpper(text(badge)), strings.ToLower(badgeClass), homeGoals, awayGoals, isHome),
			IsHome:   isHome,
		})
	})
	return fixture.LimitForm(rows), nil
}

func outcome(badgeText, badgeClass string, homeGoals, awayGoals int, isHome bool) fixture.Outcome {
	switch {
	case badgeText == "W" || strings.Contains(badgeClass, "win"):
		return fixture.OutcomeWin
	case badgeText == "D" || strings.Contains(badgeClass, "draw"):
		return fixture.OutcomeDraw
	case badgeText == "L" || strings.Contains(badgeClass, "loss") || strings.Contains(badgeClass, "lose"):
		return fixture.OutcomeLoss
	}

	switch {
	case homeGoals == awayGoals:
		return fixture.OutcomeDraw
	case isHome == (homeGoals > awayGoals):
		return fixture.OutcomeWin
	default:
		return fixture.OutcomeLoss
	}
}

// rowScore renders a row's score as "H-A". Separate goal spans are preferred;
// run-together digits such as "31" are split in the middle.
func rowScore(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	spans := sel.Find("span")
	if spans.Length() >= 2 {
		return text(spans.First()) + "-" + text(spans.Last())
	}
	raw := text(sel)
	if digitsOnlyRegex.MatchString(raw) && len(raw) >= 2 {
		mid := len(raw) / 2
		return raw[:mid] + "-" + raw[mid:]
	}
	return raw
}

func rowGoals(sel *goquery.Selection) (int, int) {
	if sel.Length() == 0 {
		return 0, 0
	}
	spans := sel.Find("span")
	if spans.Length() >= 2 {
		return atoi(text(spans.First())), atoi(text(spans.Last()))
	}
	raw := text(sel)
	if m := scorePairRegex.FindStringSubmatch(raw); m != nil {
		return atoi(m[1]), atoi(m[2])
	}
	if digitsOnlyRegex.MatchString(raw) && len(raw) == 2 {
		return atoi(raw[:1]), atoi(raw[1:])
	}
	return 0, 0
}

func splitGoals(raw string) (int, int) {
	left, right, ok := strings.Cut(raw, ":")
	if !ok {
		return atoi(raw), 0
	}
	return atoi(left), atoi(right)
}

func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// atoi parses the leading integer of raw, returning 0 when there is none.
func atoi(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && (raw[end] >= '0' && raw[end] <= '9' || (end == 0 && raw[end] == '-')) {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return n
}
