package fixture

import "testing"

func TestUniqueH2H_DedupesAndCaps(t *testing.T) {
	row := H2HEntry{Date: "01.02.25", HomeTeam: "Arsenal", AwayTeam: "Chelsea", Score: "2-1"}
	entries := []H2HEntry{row, row}
	for i := 0; i < 12; i++ {
		entries = append(entries, H2HEntry{Date: "d", HomeTeam: "Arsenal", AwayTeam: "Chelsea", Score: string(rune('0'+i%10)) + "-0"})
	}

	got := UniqueH2H(entries)
	if len(got) != MaxH2HEntries {
		t.Fatalf("expected %d entries, got %d", MaxH2HEntries, len(got))
	}
	if got[0] != row {
		t.Fatalf("expected source order to be kept, got %+v", got[0])
	}
	if got[1] == row {
		t.Fatalf("expected duplicate to be dropped")
	}
}

func TestLimitForm(t *testing.T) {
	entries := make([]FormEntry, 7)
	for i := range entries {
		entries[i] = FormEntry{Opponent: string(rune('A' + i))}
	}
	got := LimitForm(entries)
	if len(got) != MaxFormEntries || got[0].Opponent != "A" || got[4].Opponent != "E" {
		t.Fatalf("unexpected form %+v", got)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		time, score, want string
	}{
		{"15:00", "-", StatusScheduled},
		{"Finished", "2-1", StatusFinished},
		{"67'", "1-0", StatusLive},
		{"Half Time", "0-0", StatusLive},
		{"Postponed", "-", StatusCancelled},
		{"", "1-1", StatusLive},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.time, tt.score); got != tt.want {
			t.Fatalf("StatusOf(%q, %q) = %s, want %s", tt.time, tt.score, got, tt.want)
		}
	}
}

func TestHasScore(t *testing.T) {
	if (Fixture{Score: "-"}).HasScore() {
		t.Fatalf("sentinel is not a score")
	}
	if (Detail{Score: ""}).HasScore() {
		t.Fatalf("empty is not a score")
	}
	if !(Detail{Score: "0-0"}).HasScore() {
		t.Fatalf("0-0 is a score")
	}
}
