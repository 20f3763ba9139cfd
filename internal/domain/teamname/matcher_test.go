package teamname

import "testing"

func TestMatcher_AllAliasPairsOfACanonicalTeamMatch(t *testing.T) {
	m := NewMatcher(Default())

	for _, alias := range DefaultAliases {
		names := append([]string{alias.Canonical}, alias.Names...)
		for _, a := range names {
			for _, b := range names {
				if !m.TeamsMatch(a, b) {
					t.Fatalf("%s: expected %q and %q to match", alias.Canonical, a, b)
				}
			}
		}
	}
}

func TestMatcher_CascadeStages(t *testing.T) {
	m := NewMatcher(Default())

	tests := []struct {
		name string
		a, b string
		want Stage
	}{
		{name: "exact ignores case and spaces", a: " Arsenal ", b: "arsenal", want: StageExact},
		{name: "canonical alias", a: "Man Utd", b: "Manchester United", want: StageCanonical},
		{name: "cyrillic alias", a: "Chelsea", b: "Челси", want: StageCanonical},
		{name: "minor spelling drift", a: "Borussia Dortmnd", b: "Borussia Dortmund", want: StageSimilarity},
		{name: "similarity outside alias table", a: "Crvena Zvezda", b: "Crvena Zvezde", want: StageSimilarity},
		{name: "containment", a: "Partizan", b: "FK Partizan Beograd", want: StageContains},
		{name: "unrelated", a: "Spartak Moskva", b: "PSG", want: StageNone},
		{name: "short names skip containment", a: "AZ", b: "AZAL", want: StageNone},
		{name: "empty never matches", a: "", b: "", want: StageNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.a, tt.b)
			if got != tt.want {
				t.Fatalf("Match(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatcher_SpartakAndPSGNeverMatch(t *testing.T) {
	m := NewMatcher(nil)
	if m.TeamsMatch("Spartak Moskva", "PSG") || m.TeamsMatch("PSG", "Spartak Moskva") {
		t.Fatalf("Spartak Moskva and PSG must not match")
	}
}

func TestMatcher_FixtureMatchesIsHomeAwayRigid(t *testing.T) {
	m := NewMatcher(nil)

	if !m.FixtureMatches("Manchester Utd", "Liverpool", "Mančester Junajted", "Liverpul") {
		t.Fatalf("expected fixture to match")
	}
	if m.FixtureMatches("Manchester Utd", "Liverpool", "Liverpul", "Mančester Junajted") {
		t.Fatalf("swapped sides must not match")
	}
	if m.FixtureMatches("Manchester Utd", "Liverpool", "Man Utd", "Everton") {
		t.Fatalf("both sides must match")
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("", ""); got != 1 {
		t.Fatalf("empty strings are identical, got %f", got)
	}
	if got := Similarity("abcd", "abce"); got != 0.75 {
		t.Fatalf("expected 0.75, got %f", got)
	}
	if got := Similarity("Šefild", "šefild"); got != 1 {
		t.Fatalf("expected case-insensitive rune comparison, got %f", got)
	}
}
