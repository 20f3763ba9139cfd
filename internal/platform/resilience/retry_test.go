package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_SucceedsOnSecondAttempt(t *testing.T) {
	t.Parallel()

	var attempts []int
	var observed []int
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 2, Delay: time.Millisecond}, func(_ context.Context, attempt int) error {
		attempts = append(attempts, attempt)
		if attempt == 1 {
			return errors.New("navigation failed")
		}
		return nil
	}, func(attempt int, _ error, wait time.Duration) {
		observed = append(observed, attempt)
		if wait != time.Millisecond {
			t.Errorf("unexpected wait %s", wait)
		}
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Fatalf("unexpected attempts %v", attempts)
	}
	if len(observed) != 1 || observed[0] != 1 {
		t.Fatalf("expected one retry notification, got %v", observed)
	}
}

func TestRetry_ExhaustsAttemptsAndWrapsLastError(t *testing.T) {
	t.Parallel()

	last := errors.New("second failure")
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 2, Delay: time.Millisecond}, func(_ context.Context, attempt int) error {
		calls++
		if attempt == 2 {
			return last
		}
		return errors.New("first failure")
	}, nil)
	if !errors.Is(err, last) {
		t.Fatalf("expected last error to be wrapped, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestRetry_PermanentErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	notFound := MarkPermanent(errors.New("not found"))
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 5, Delay: time.Millisecond}, func(context.Context, int) error {
		calls++
		return notFound
	}, nil)
	if !IsPermanent(err) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestRetry_AttemptTimeoutCountsAsFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 2, AttemptTimeout: 10 * time.Millisecond}, func(ctx context.Context, attempt int) error {
		calls++
		if attempt == 1 {
			<-ctx.Done()
			return ctx.Err()
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("expected timed-out attempt to be retried, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestRetry_StopsWhenContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 3, Delay: time.Hour}, func(context.Context, int) error {
		calls++
		cancel()
		return errors.New("boom")
	}, nil)
	if err == nil {
		t.Fatalf("expected error after cancel, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}
