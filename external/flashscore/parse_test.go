package flashscore

import (
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
)

const listHTML = `<html><body>
<div class="headerLeague__wrapper">
  <span class="headerLeague__category-text">ENGLAND</span>
  <span class="headerLeague__title-text">Premier League</span>
</div>
<div class="event__match">
  <a class="eventRowLink" href="https://www.flashscore.com/match/football/arsenal/chelsea/?mid=AbC123"></a>
  <div class="event__time">15:00</div>
  <div class="event__homeParticipant"><img data-testid="wcl-participantLogo" src="/ars.png"><span class="wcl-name_jjfMf">Arsenal</span></div>
  <div class="event__awayParticipant"><span class="wcl-name_jjfMf">Chelsea</span></div>
</div>
<div class="event__match">
  <a class="eventRowLink" href="/match/XyZ789/#/match-summary"></a>
  <div class="event__stage--block">FT</div>
  <div class="event__homeParticipant">Everton</div>
  <div class="event__awayParticipant">Fulham</div>
  <span class="event__score--home">2</span>
  <span class="event__score--away">0</span>
</div>
<div class="event__match">
  <div class="event__homeParticipant">No</div>
  <div class="event__awayParticipant">Link</div>
</div>
<div class="headerLeague__wrapper">
  <span class="headerLeague__category-text">ENGLAND</span>
  <span class="headerLeague__title-text">Premier League 2</span>
</div>
<div class="event__match">
  <a class="eventRowLink" href="/match/U21aaa/"></a>
  <div class="event__time">18:00</div>
  <div class="event__homeParticipant">Arsenal U21</div>
  <div class="event__awayParticipant">Chelsea U21</div>
</div>
</body></html>`

func TestParseList(t *testing.T) {
	t.Parallel()

	keep := func(label string) bool { return label != "ENGLAND: Premier League 2" }
	got, err := ParseList(listHTML, keep)
	if err != nil {
		t.Fatalf("ParseList error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fixtures, got %d: %+v", len(got), got)
	}

	first := got[0]
	if first.ID != "AbC123" || first.League != "ENGLAND: Premier League" {
		t.Fatalf("unexpected first fixture %+v", first)
	}
	if first.HomeTeam.Name != "Arsenal" || first.HomeTeam.Logo != "/ars.png" || first.AwayTeam.Name != "Chelsea" {
		t.Fatalf("unexpected participants %+v", first)
	}
	if first.Time != "15:00" || first.Score != fixture.ScoreNotStarted {
		t.Fatalf("unexpected time/score %q %q", first.Time, first.Score)
	}

	second := got[1]
	if second.ID != "XyZ789" || second.Time != "FT" || second.Score != "2-0" {
		t.Fatalf("unexpected second fixture %+v", second)
	}
}

func TestParseList_NilKeepRetainsAll(t *testing.T) {
	t.Parallel()

	got, err := ParseList(listHTML, nil)
	if err != nil {
		t.Fatalf("ParseList error: %v", err)
	}
	if len(got) != 3 || got[2].League != "ENGLAND: Premier League 2" {
		t.Fatalf("expected every linked row, got %+v", got)
	}
}

func TestMatchIDFromURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		href string
		want string
	}{
		{href: "https://www.flashscore.com/match/football/a/b/?mid=Q1w2E3", want: "Q1w2E3"},
		{href: "/match/Zz9/#/h2h", want: "Zz9"},
		{href: "/match/football/x/?mid=M1&tab=summary", want: "M1"},
		{href: "/team/arsenal/", want: ""},
		{href: "", want: ""},
	}
	for _, tc := range cases {
		if got := MatchIDFromURL(tc.href); got != tc.want {
			t.Fatalf("MatchIDFromURL(%q)=%q want %q", tc.href, got, tc.want)
		}
	}
}

const summaryHTML = `<div class="duelParticipant">
  <div class="duelParticipant__startTime">05.01.2026 15:00</div>
  <div class="duelParticipant__home"><img src="/home.png"><a class="participant__participantName">Arsenal</a></div>
  <div class="duelParticipant__away"><img src="/away.png"><a class="participant__participantName">Chelsea</a></div>
  <div class="detailScore__wrapper"><span>2</span><span>-</span><span>1</span></div>
</div>`

func TestParseSummary(t *testing.T) {
	t.Parallel()

	detail, err := ParseSummary(summaryHTML)
	if err != nil {
		t.Fatalf("ParseSummary error: %v", err)
	}
	if detail.HomeTeam.Name != "Arsenal" || detail.AwayTeam.Name != "Chelsea" {
		t.Fatalf("unexpected teams %+v", detail)
	}
	if detail.HomeTeam.Logo != "/home.png" || detail.AwayTeam.Logo != "/away.png" {
		t.Fatalf("unexpected logos %+v", detail)
	}
	if detail.Time != "05.01.2026 15:00" || detail.Score != "2-1" {
		t.Fatalf("unexpected time/score %q %q", detail.Time, detail.Score)
	}
}

func TestParseSummary_MissingParticipantIsNotFound(t *testing.T) {
	t.Parallel()

	_, err := ParseSummary(`<div class="duelParticipant__home"><a class="participant__participantName">Arsenal</a></div>`)
	if err != fixture.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseSummary_NoScoreKeepsSentinel(t *testing.T) {
	t.Parallel()

	html := strings.Replace(summaryHTML, `<div class="detailScore__wrapper"><span>2</span><span>-</span><span>1</span></div>`, "", 1)
	detail, err := ParseSummary(html)
	if err != nil {
		t.Fatalf("ParseSummary error: %v", err)
	}
	if detail.Score != fixture.ScoreNotStarted {
		t.Fatalf("expected sentinel score, got %q", detail.Score)
	}
}

func standingRow(rank, team string, values ...string) string {
	var cells strings.Builder
	for _, v := range values {
		cells.WriteString(`<span class="table__cell table__cell--value">` + v + `</span>`)
	}
	return `<div class="ui-table__row"><span class="tableCellRank">` + rank + `</span><a class="tableCellParticipant__name">` + team + `</a>` + cells.String() + `</div>`
}

func TestParseStandings(t *testing.T) {
	t.Parallel()

	html := `<div class="ui-table">` +
		standingRow("1.", "Arsenal", "20", "15", "3", "2", "45:15", "30", "48") +
		standingRow("2.", "Liverpool", "20", "14", "4", "2", "40:18", "22", "46") +
		standingRow("7.", "Chelsea FC", "20", "9", "5", "6", "33:28", "5", "32") +
		standingRow("8.", "Broken", "1") +
		`</div>`

	got, err := ParseStandings(html, "Arsenal", "Chelsea")
	if err != nil {
		t.Fatalf("ParseStandings error: %v", err)
	}
	if got.Home == nil || got.Away == nil {
		t.Fatalf("expected both rows, got %+v", got)
	}
	want := fixture.Standing{Position: 1, Played: 20, Won: 15, Drawn: 3, Lost: 2, GoalsFor: 45, GoalsAgainst: 15, Points: 48}
	if *got.Home != want {
		t.Fatalf("unexpected home standing %+v", *got.Home)
	}
	if got.Away.Position != 7 || got.Away.GoalsFor != 33 || got.Away.GoalsAgainst != 28 || got.Away.Points != 32 {
		t.Fatalf("unexpected away standing %+v", *got.Away)
	}
}

func TestParseStandings_MissingTeamLeavesNil(t *testing.T) {
	t.Parallel()

	html := standingRow("1.", "Arsenal", "20", "15", "3", "2", "45:15", "30", "48")
	got, err := ParseStandings(html, "Arsenal", "Wrexham")
	if err != nil {
		t.Fatalf("ParseStandings error: %v", err)
	}
	if got.Home == nil || got.Away != nil {
		t.Fatalf("expected only home row, got %+v", got)
	}
}

func h2hRow(date, home, away, homeGoals, awayGoals string) string {
	return `<div class="h2h__row">` +
		`<span class="h2h__date">` + date + `</span>` +
		`<span class="h2h__homeParticipant"><span class="h2h__participantInner">` + home + `</span></span>` +
		`<span class="h2h__awayParticipant"><span class="h2h__participantInner">` + away + `</span></span>` +
		`<span class="h2h__result"><span>` + homeGoals + `</span><span>` + awayGoals + `</span></span>` +
		`</div>`
}

func TestParseH2H_KeepsMutualMeetingsOnce(t *testing.T) {
	t.Parallel()

	html := h2hRow("01.10.25", "Arsenal", "Chelsea", "2", "1") +
		h2hRow("01.10.25", "Arsenal", "Chelsea", "2", "1") +
		h2hRow("12.04.25", "Chelsea", "Arsenal", "0", "0") +
		h2hRow("03.03.25", "Arsenal", "Everton", "3", "0")

	got, err := ParseH2H(html, "Arsenal", "Chelsea")
	if err != nil {
		t.Fatalf("ParseH2H error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 meetings, got %d: %+v", len(got), got)
	}
	if got[0] != (fixture.H2HEntry{Date: "01.10.25", HomeTeam: "Arsenal", AwayTeam: "Chelsea", Score: "2-1"}) {
		t.Fatalf("unexpected first meeting %+v", got[0])
	}
	if got[1].HomeTeam != "Chelsea" || got[1].Score != "0-0" {
		t.Fatalf("unexpected second meeting %+v", got[1])
	}
}

func TestParseH2H_CapsAtTen(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 1; i <= 14; i++ {
		b.WriteString(h2hRow(fmt.Sprintf("%02d.01.24", i), "Arsenal", "Chelsea", "1", "0"))
	}
	got, err := ParseH2H(b.String(), "Arsenal", "Chelsea")
	if err != nil {
		t.Fatalf("ParseH2H error: %v", err)
	}
	if len(got) != fixture.MaxH2HEntries {
		t.Fatalf("expected %d meetings, got %d", fixture.MaxH2HEntries, len(got))
	}
	if got[0].Date != "01.01.24" {
		t.Fatalf("expected source order, first=%q", got[0].Date)
	}
}

func formRow(home, away, homeGoals, awayGoals, badge string) string {
	row := `<div class="h2h__row">` +
		`<span class="h2h__date">01.01.26</span>` +
		`<span class="h2h__homeParticipant">` + home + `</span>` +
		`<span class="h2h__awayParticipant">` + away + `</span>` +
		`<span class="h2h__result"><span>` + homeGoals + `</span><span>` + awayGoals + `</span></span>`
	if badge != "" {
		row += `<div class="wcl-badgeform"><span>` + badge + `</span></div>`
	}
	return row + `</div>`
}

func TestParseForm(t *testing.T) {
	t.Parallel()

	html := formRow("Arsenal", "Everton", "2", "1", "W") +
		formRow("Arsenal", "Fulham", "0", "0", "") +
		formRow("Arsenal", "Spurs", "0", "2", "") +
		formRow("Arsenal", "Leeds", "1", "1", "D") +
		formRow("Arsenal", "Wolves", "4", "0", "") +
		formRow("Arsenal", "Brentford", "1", "0", "")

	got, err := ParseForm(html, true)
	if err != nil {
		t.Fatalf("ParseForm error: %v", err)
	}
	if len(got) != fixture.MaxFormEntries {
		t.Fatalf("expected %d entries, got %d", fixture.MaxFormEntries, len(got))
	}
	wantOutcomes := []fixture.Outcome{fixture.OutcomeWin, fixture.OutcomeDraw, fixture.OutcomeLoss, fixture.OutcomeDraw, fixture.OutcomeWin}
	for i, want := range wantOutcomes {
		if got[i].Outcome != want {
			t.Fatalf("entry %d outcome=%q want %q", i, got[i].Outcome, want)
		}
		if !got[i].IsHome {
			t.Fatalf("entry %d must be marked home", i)
		}
	}
	if got[0].Opponent != "Everton" || got[0].Result != "2-1" {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
}

func TestParseForm_AwaySideReadsScoreFromTeamView(t *testing.T) {
	t.Parallel()

	html := formRow("Everton", "Chelsea", "0", "3", "") + formRow("Spurs", "Chelsea", "2", "0", "")
	got, err := ParseForm(html, false)
	if err != nil {
		t.Fatalf("ParseForm error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Opponent != "Everton" || got[0].Outcome != fixture.OutcomeWin {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
	if got[1].Outcome != fixture.OutcomeLoss {
		t.Fatalf("expected away loss, got %+v", got[1])
	}
}

func TestRowScoreSplitsRunTogetherDigits(t *testing.T) {
	t.Parallel()

	html := `<div class="h2h__row"><span class="h2h__homeParticipant">Arsenal</span><span class="h2h__awayParticipant">Chelsea</span><span class="h2h__result">31</span></div>`
	got, err := ParseH2H(html, "Arsenal", "Chelsea")
	if err != nil {
		t.Fatalf("ParseH2H error: %v", err)
	}
	if len(got) != 1 || got[0].Score != "3-1" {
		t.Fatalf("expected split score, got %+v", got)
	}
}
