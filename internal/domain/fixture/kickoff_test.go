package fixture

import (
	"testing"
	"time"
)

func TestParseKickoff(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, loc)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "full date", raw: "07.01.2026 20:45", want: time.Date(2026, 1, 7, 20, 45, 0, 0, loc)},
		{name: "date without time", raw: "07.01.2026", want: time.Date(2026, 1, 7, 0, 0, 0, 0, loc)},
		{name: "clock means today", raw: "17:30", want: time.Date(2026, 1, 5, 17, 30, 0, 0, loc)},
		{name: "padded clock", raw: " 09:05 ", want: time.Date(2026, 1, 5, 9, 5, 0, 0, loc)},
		{name: "status token", raw: "FT", want: now},
		{name: "live minute", raw: "67'", want: now},
		{name: "empty", raw: "", want: now},
		{name: "garbage date", raw: "xx.yy.zzzz 10:00", want: now},
		{name: "out of range clock", raw: "25:61", want: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKickoff(tt.raw, now, loc)
			if !got.Equal(tt.want) {
				t.Fatalf("ParseKickoff(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseKickoff_ClockUsesDayInLocation(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	// 23:30 UTC is already the next day in CET.
	now := time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC)

	got := ParseKickoff("10:00", now, loc)
	want := time.Date(2026, 1, 6, 10, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}
}
