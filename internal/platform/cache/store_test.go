package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestStore_DayStampRuleDominatesTTL(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 5, 23, 50, 0, 0, time.UTC)}
	store := NewStore(0, WithClock(clock.Now))
	ctx := context.Background()

	store.Set(ctx, "matches-2026-01-05", "list")
	alwaysFresh := func(Entry, time.Time) bool { return true }

	if _, ok := store.GetFresh(ctx, "matches-2026-01-05", alwaysFresh); !ok {
		t.Fatalf("expected entry on the day it was written")
	}

	clock.Advance(15 * time.Minute)
	if _, ok := store.GetFresh(ctx, "matches-2026-01-05", alwaysFresh); ok {
		t.Fatalf("expected entry to be absent after day rollover")
	}
	if store.Len() != 0 {
		t.Fatalf("expected stale entry to be evicted, len=%d", store.Len())
	}
}

func TestStore_DayStampUsesConfiguredLocation(t *testing.T) {
	t.Parallel()

	belgrade := time.FixedZone("CET", 60*60)
	clock := &fakeClock{now: time.Date(2026, 1, 5, 22, 30, 0, 0, time.UTC)}
	store := NewStore(0, WithClock(clock.Now), WithLocation(belgrade))

	if got := store.DayStamp(); got != "2026-01-05" {
		t.Fatalf("unexpected day stamp %q", got)
	}
	clock.Advance(45 * time.Minute)
	if got := store.DayStamp(); got != "2026-01-06" {
		t.Fatalf("expected local midnight to roll the stamp, got %q", got)
	}
}

func TestStore_TTLAndFreshnessEvict(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)}
	store := NewStore(time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	store.Set(ctx, "a", 1)
	clock.Advance(30 * time.Second)
	if v, ok := store.Get(ctx, "a"); !ok || v.(int) != 1 {
		t.Fatalf("expected value within ttl, got %v %v", v, ok)
	}
	clock.Advance(31 * time.Second)
	if _, ok := store.Get(ctx, "a"); ok {
		t.Fatalf("expected value to expire after ttl")
	}

	store.Set(ctx, "b", 2)
	never := func(Entry, time.Time) bool { return false }
	if _, ok := store.GetFresh(ctx, "b", never); ok {
		t.Fatalf("expected freshness predicate to reject entry")
	}
	if _, ok := store.Get(ctx, "b"); ok {
		t.Fatalf("expected rejected entry to be evicted")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "match-1", 1)
	store.Set(ctx, "match-2", 2)
	store.Set(ctx, "matches-2026-01-05", 3)
	store.Set(ctx, "other", 4)

	if removed := store.DeletePrefix(ctx, "match-"); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if _, ok := store.Get(ctx, "matches-2026-01-05"); !ok {
		t.Fatalf("list key must survive detail prefix delete")
	}
	if removed := store.DeletePrefix(ctx, ""); removed != 0 {
		t.Fatalf("empty prefix must be a no-op, got %d", removed)
	}
}

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, _, err := store.GetOrLoad(context.Background(), "same-key", nil, loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ReportsCacheHit(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	_, cached, err := store.GetOrLoad(context.Background(), "k", nil, loader)
	if err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if cached {
		t.Fatalf("first load must not report a cache hit")
	}
	_, cached, err = store.GetOrLoad(context.Background(), "k", nil, loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if !cached {
		t.Fatalf("second load must report a cache hit")
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	boom := errors.New("boom")
	if _, _, err := store.GetOrLoad(context.Background(), "k", nil, func(context.Context) (any, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("failed loads must not be cached")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
