package job

import (
	"testing"
	"time"
)

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusRunning, true},
		{StatusPending, StatusFailed, false},
		{StatusPending, StatusCompleted, false},
		{StatusRunning, StatusCompleted, true},
		{StatusRunning, StatusFailed, true},
		{StatusRunning, StatusPending, false},
		{StatusCompleted, StatusRunning, false},
		{StatusFailed, StatusCompleted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: got %v want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestJob_CloneIsDeep(t *testing.T) {
	t.Parallel()

	done := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	original := Job{
		ID:          "job_1",
		Progress:    &Progress{Current: 1, Total: 2},
		Result:      &BulkResult{Leagues: []string{"a"}},
		CompletedAt: &done,
	}

	clone := original.Clone()
	clone.Progress.Current = 2
	clone.Result.Leagues[0] = "b"
	*clone.CompletedAt = done.Add(time.Hour)

	if original.Progress.Current != 1 || original.Result.Leagues[0] != "a" || !original.CompletedAt.Equal(done) {
		t.Fatalf("clone shares state with original: %+v", original)
	}
}
