package httpapi

import (
	"time"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/domain/job"
	"github.com/riskibarqy/matchodds/internal/domain/odds"
)

type startScrapeJobRequest struct {
	ForceRefresh bool `json:"forceRefresh"`
}

type teamDTO struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type fixtureDTO struct {
	ID       string  `json:"id"`
	League   string  `json:"league"`
	HomeTeam teamDTO `json:"homeTeam"`
	AwayTeam teamDTO `json:"awayTeam"`
	Time     string  `json:"time"`
	Status   string  `json:"status"`
	URL      string  `json:"url,omitempty"`
	Score    string  `json:"score"`
}

type matchListDTO struct {
	Date      string       `json:"date"`
	FromCache bool         `json:"fromCache"`
	Total     int          `json:"total"`
	Fixtures  []fixtureDTO `json:"fixtures"`
}

type standingDTO struct {
	Position     int `json:"position"`
	Played       int `json:"played"`
	Won          int `json:"won"`
	Drawn        int `json:"drawn"`
	Lost         int `json:"lost"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
	Points       int `json:"points"`
}

type standingsDTO struct {
	Home *standingDTO `json:"home"`
	Away *standingDTO `json:"away"`
}

type formEntryDTO struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Result   string `json:"result"`
	Outcome  string `json:"outcome"`
	IsHome   bool   `json:"isHome"`
}

type h2hEntryDTO struct {
	Date     string `json:"date"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Score    string `json:"score"`
}

type fixtureDetailDTO struct {
	ID        string         `json:"id"`
	League    string         `json:"league"`
	HomeTeam  teamDTO        `json:"homeTeam"`
	AwayTeam  teamDTO        `json:"awayTeam"`
	Time      string         `json:"time"`
	Date      string         `json:"date"`
	Status    string         `json:"status"`
	Score     string         `json:"score"`
	Standings standingsDTO   `json:"standings"`
	HomeForm  []formEntryDTO `json:"homeForm"`
	AwayForm  []formEntryDTO `json:"awayForm"`
	H2H       []h2hEntryDTO  `json:"h2h"`
	FromCache bool           `json:"fromCache"`
}

type jobProgressDTO struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type jobResultDTO struct {
	TotalScraped int      `json:"totalScraped"`
	Leagues      []string `json:"leagues"`
	Errors       []string `json:"errors"`
}

type jobDTO struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Progress    *jobProgressDTO `json:"progress,omitempty"`
	Result      *jobResultDTO   `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

type jobListDTO struct {
	Total int      `json:"total"`
	Jobs  []jobDTO `json:"jobs"`
}

type pricesDTO struct {
	Home       string `json:"1"`
	Draw       string `json:"X"`
	Away       string `json:"2"`
	HomeOrDraw string `json:"1X"`
	HomeOrAway string `json:"12"`
	DrawOrAway string `json:"X2"`
	Over2_5    string `json:"over2_5"`
	Under2_5   string `json:"under2_5"`
	Over3_5    string `json:"over3_5"`
	GG         string `json:"gg"`
	NG         string `json:"ng"`
	GG3        string `json:"gg3"`
	GG4        string `json:"gg4"`
}

type oddsEntryDTO struct {
	MatchID       string    `json:"matchId"`
	FixtureHome   string    `json:"fixtureHome"`
	FixtureAway   string    `json:"fixtureAway"`
	BookmakerHome string    `json:"bookmakerHome"`
	BookmakerAway string    `json:"bookmakerAway"`
	Odds          pricesDTO `json:"odds"`
	Favourite     string    `json:"favourite,omitempty"`
	ScrapedAt     time.Time `json:"scrapedAt"`
}

type quoteDTO struct {
	HomeTeam string    `json:"homeTeam"`
	AwayTeam string    `json:"awayTeam"`
	Time     string    `json:"time"`
	Odds     pricesDTO `json:"odds"`
}

type reconcileDTO struct {
	TotalQuotes   int            `json:"totalQuotes"`
	TotalFixtures int            `json:"totalFixtures"`
	MatchedCount  int            `json:"matchedCount"`
	Matched       []oddsEntryDTO `json:"matched"`
	Unmatched     []quoteDTO     `json:"unmatched"`
}

type oddsListDTO struct {
	Count int            `json:"count"`
	Odds  []oddsEntryDTO `json:"odds"`
}

type clearOddsDTO struct {
	Removed int `json:"removed"`
}

func teamToDTO(v fixture.Team) teamDTO {
	return teamDTO{Name: v.Name, Logo: v.Logo}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:       v.ID,
		League:   v.League,
		HomeTeam: teamToDTO(v.HomeTeam),
		AwayTeam: teamToDTO(v.AwayTeam),
		Time:     v.Time,
		Status:   fixture.StatusOf(v.Time, v.Score),
		URL:      v.URL,
		Score:    v.Score,
	}
}

func matchListToDTO(list fixture.List, fromCache bool) matchListDTO {
	items := make([]fixtureDTO, 0, len(list.Fixtures))
	for _, item := range list.Fixtures {
		items = append(items, fixtureToDTO(item))
	}
	return matchListDTO{
		Date:      list.Date,
		FromCache: fromCache,
		Total:     len(items),
		Fixtures:  items,
	}
}

func standingToDTO(v *fixture.Standing) *standingDTO {
	if v == nil {
		return nil
	}
	return &standingDTO{
		Position:     v.Position,
		Played:       v.Played,
		Won:          v.Won,
		Drawn:        v.Drawn,
		Lost:         v.Lost,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
		Points:       v.Points,
	}
}

func formToDTO(entries []fixture.FormEntry) []formEntryDTO {
	out := make([]formEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, formEntryDTO{
			Date:     entry.Date,
			Opponent: entry.Opponent,
			Result:   entry.Result,
			Outcome:  string(entry.Outcome),
			IsHome:   entry.IsHome,
		})
	}
	return out
}

func fixtureDetailToDTO(v fixture.Detail, fromCache bool) fixtureDetailDTO {
	h2h := make([]h2hEntryDTO, 0, len(v.H2H))
	for _, entry := range v.H2H {
		h2h = append(h2h, h2hEntryDTO{
			Date:     entry.Date,
			HomeTeam: entry.HomeTeam,
			AwayTeam: entry.AwayTeam,
			Score:    entry.Score,
		})
	}
	return fixtureDetailDTO{
		ID:       v.ID,
		League:   v.League,
		HomeTeam: teamToDTO(v.HomeTeam),
		AwayTeam: teamToDTO(v.AwayTeam),
		Time:     v.Time,
		Date:     v.Date,
		Status:   fixture.StatusOf(v.Time, v.Score),
		Score:    v.Score,
		Standings: standingsDTO{
			Home: standingToDTO(v.Standings.Home),
			Away: standingToDTO(v.Standings.Away),
		},
		HomeForm:  formToDTO(v.HomeForm),
		AwayForm:  formToDTO(v.AwayForm),
		H2H:       h2h,
		FromCache: fromCache,
	}
}

func jobToDTO(v job.Job) jobDTO {
	out := jobDTO{
		ID:          v.ID,
		Status:      string(v.Status),
		Error:       v.Error,
		StartedAt:   v.StartedAt,
		CompletedAt: v.CompletedAt,
	}
	if v.Progress != nil {
		out.Progress = &jobProgressDTO{Current: v.Progress.Current, Total: v.Progress.Total}
	}
	if v.Result != nil {
		out.Result = &jobResultDTO{
			TotalScraped: v.Result.TotalScraped,
			Leagues:      append([]string{}, v.Result.Leagues...),
			Errors:       append([]string{}, v.Result.Errors...),
		}
	}
	return out
}

func pricesToDTO(p odds.Prices) pricesDTO {
	return pricesDTO{
		Home:       p.Home,
		Draw:       p.Draw,
		Away:       p.Away,
		HomeOrDraw: p.HomeOrDraw,
		HomeOrAway: p.HomeOrAway,
		DrawOrAway: p.DrawOrAway,
		Over2_5:    p.Over2_5,
		Under2_5:   p.Under2_5,
		Over3_5:    p.Over3_5,
		GG:         p.GG,
		NG:         p.NG,
		GG3:        p.GG3,
		GG4:        p.GG4,
	}
}

func oddsEntryToDTO(v odds.Entry) oddsEntryDTO {
	return oddsEntryDTO{
		MatchID:       v.FixtureID,
		FixtureHome:   v.FixtureHome,
		FixtureAway:   v.FixtureAway,
		BookmakerHome: v.BookmakerHome,
		BookmakerAway: v.BookmakerAway,
		Odds:          pricesToDTO(v.Prices),
		Favourite:     v.Prices.Favourite(),
		ScrapedAt:     v.ScrapedAt,
	}
}

func oddsEntriesToDTO(items []odds.Entry) []oddsEntryDTO {
	out := make([]oddsEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, oddsEntryToDTO(item))
	}
	return out
}

func reconcileToDTO(v odds.ReconcileResult) reconcileDTO {
	unmatched := make([]quoteDTO, 0, len(v.Unmatched))
	for _, quote := range v.Unmatched {
		unmatched = append(unmatched, quoteDTO{
			HomeTeam: quote.HomeTeam,
			AwayTeam: quote.AwayTeam,
			Time:     quote.Time,
			Odds:     pricesToDTO(quote.Prices),
		})
	}
	return reconcileDTO{
		TotalQuotes:   v.TotalQuotes,
		TotalFixtures: v.TotalFixtures,
		MatchedCount:  v.MatchedCount,
		Matched:       oddsEntriesToDTO(v.Matched),
		Unmatched:     unmatched,
	}
}
