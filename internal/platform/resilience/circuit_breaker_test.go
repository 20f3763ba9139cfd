package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int, openTimeout time.Duration) (*CircuitBreaker, *time.Time, *[]CircuitState) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	var transitions []CircuitState
	b := NewCircuitBreaker("flashscore", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   1,
	}, func(_ string, _, to CircuitState) {
		transitions = append(transitions, to)
	})
	b.now = func() time.Time { return now }
	return b, &now, &transitions
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b, now, transitions := newTestBreaker(2, 5*time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second half-open probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}

	want := []CircuitState{CircuitStateOpen, CircuitStateHalfOpen, CircuitStateClosed}
	if len(*transitions) != len(want) {
		t.Fatalf("unexpected transitions %v", *transitions)
	}
	for i := range want {
		if (*transitions)[i] != want[i] {
			t.Fatalf("transition %d: got %s want %s", i, (*transitions)[i], want[i])
		}
	}
}

func TestCircuitBreaker_ExecuteIgnoresPermanentErrors(t *testing.T) {
	b, _, _ := newTestBreaker(1, time.Minute)
	notFound := MarkPermanent(errors.New("fixture not found"))

	for i := 0; i < 3; i++ {
		err := b.Execute(context.Background(), func(context.Context) error { return notFound })
		if !errors.Is(err, notFound) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("permanent errors must not open the breaker, got %s", state)
	}

	_ = b.Execute(context.Background(), func(context.Context) error { return errors.New("render timeout") })
	err := b.Execute(context.Background(), func(context.Context) error {
		t.Fatalf("fn must not run while open")
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected wrapped ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_NilExecutesDirectly(t *testing.T) {
	var b *CircuitBreaker
	called := false
	if err := b.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	}); err != nil || !called {
		t.Fatalf("expected nil breaker to run fn, called=%v err=%v", called, err)
	}
}
