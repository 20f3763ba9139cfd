package fixture

import (
	"strings"
)

// ScoreNotStarted is the score sentinel for fixtures without a result.
const ScoreNotStarted = "-"

const (
	MaxFormEntries = 5
	MaxH2HEntries  = 10
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
)

type Team struct {
	Name string
	Logo string
}

// Fixture is one match row from the live-scores list. Time is either a
// kickoff ("15:00", "05.01.2026 15:00") or a status token ("FT", "67'").
type Fixture struct {
	ID       string
	League   string
	HomeTeam Team
	AwayTeam Team
	Time     string
	URL      string
	Score    string
}

// HasScore reports whether a result has been recorded.
func (f Fixture) HasScore() bool {
	return hasScore(f.Score)
}

// List is the daily fixture list. Date is the day stamp it was scraped on.
type List struct {
	Date     string
	Fixtures []Fixture
}

type Standing struct {
	Position     int
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

type Standings struct {
	Home *Standing
	Away *Standing
}

type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

type FormEntry struct {
	Date     string
	Opponent string
	Result   string
	Outcome  Outcome
	IsHome   bool
}

type H2HEntry struct {
	Date     string
	HomeTeam string
	AwayTeam string
	Score    string
}

// Detail extends a fixture with standings, recent form and head-to-head history.
type Detail struct {
	ID        string
	League    string
	HomeTeam  Team
	AwayTeam  Team
	Time      string
	Date      string
	Score     string
	Standings Standings
	HomeForm  []FormEntry
	AwayForm  []FormEntry
	H2H       []H2HEntry
}

func (d Detail) HasScore() bool {
	return hasScore(d.Score)
}

func hasScore(score string) bool {
	score = strings.TrimSpace(score)
	return score != "" && score != ScoreNotStarted
}

// LimitForm keeps the first MaxFormEntries entries in source order.
func LimitForm(entries []FormEntry) []FormEntry {
	if len(entries) > MaxFormEntries {
		entries = entries[:MaxFormEntries]
	}
	return append([]FormEntry(nil), entries...)
}

// UniqueH2H drops repeated (date, home, away, score) rows, keeping the first
// occurrence, and caps the result at MaxH2HEntries.
func UniqueH2H(entries []H2HEntry) []H2HEntry {
	seen := make(map[H2HEntry]struct{}, len(entries))
	out := make([]H2HEntry, 0, min(len(entries), MaxH2HEntries))
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
		if len(out) == MaxH2HEntries {
			break
		}
	}
	return out
}

// StatusOf derives a coarse status from the raw time/status token and score.
func StatusOf(timeToken, score string) string {
	token := strings.ToUpper(strings.TrimSpace(timeToken))
	switch {
	case IsFinishedToken(token):
		return StatusFinished
	case IsCancelledToken(token):
		return StatusCancelled
	case IsLiveToken(token):
		return StatusLive
	case hasScore(score) && !strings.Contains(token, ":"):
		return StatusLive
	default:
		return StatusScheduled
	}
}

func IsLiveToken(token string) bool {
	token = strings.ToUpper(strings.TrimSpace(token))
	switch token {
	case "LIVE", "HALF TIME", "HT", "EXTRA TIME", "PENALTIES", "BREAK TIME":
		return true
	}
	return strings.HasSuffix(token, "'")
}

func IsFinishedToken(token string) bool {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "FINISHED", "FT", "AET", "AFTER PEN.", "AFTER ET", "AWARDED":
		return true
	default:
		return false
	}
}

func IsCancelledToken(token string) bool {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "POSTPONED", "CANCELLED", "ABANDONED", "INTERRUPTED":
		return true
	default:
		return false
	}
}
