package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

const dayStampLayout = "2006-01-02"

// Entry is a cached payload together with the calendar day and instant it was written.
type Entry struct {
	Value     any
	DayStamp  string
	CreatedAt time.Time
}

// FreshnessFunc decides whether an entry that survived the day-stamp rule may still be served.
type FreshnessFunc func(entry Entry, now time.Time) bool

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone used to compute day stamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// Store is a process-lifetime keyed cache. Every entry is stamped with the
// day it was written and disappears once the day changes, independent of ttl.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
	loc     *time.Location
	flight  singleflight.Group
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     time.Now,
		loc:     time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store clock's current instant.
func (s *Store) Now() time.Time {
	return s.now()
}

// Location returns the zone day stamps are computed in.
func (s *Store) Location() *time.Location {
	return s.loc
}

// DayStamp returns today's stamp, e.g. "2026-01-05".
func (s *Store) DayStamp() string {
	return s.now().In(s.loc).Format(dayStampLayout)
}

func (s *Store) Get(ctx context.Context, key string) (any, bool) {
	e, ok := s.GetEntry(ctx, key)
	if !ok {
		return nil, false
	}
	return e.Value, true
}

// GetEntry returns the entry for key unless it was written on another day or
// outlived the store ttl. Rejected entries are evicted.
func (s *Store) GetEntry(ctx context.Context, key string) (Entry, bool) {
	return s.GetFresh(ctx, key, nil)
}

// GetFresh is GetEntry with an extra, content-aware freshness check.
func (s *Store) GetFresh(_ context.Context, key string, fresh FreshnessFunc) (Entry, bool) {
	if key == "" {
		return Entry{}, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}

	now := s.now()
	if s.usable(e, now) && (fresh == nil || fresh(e, now)) {
		return e, true
	}

	s.mu.Lock()
	// Only evict the entry we inspected; a concurrent Set may have replaced it.
	if current, exists := s.entries[key]; exists && current.CreatedAt.Equal(e.CreatedAt) {
		delete(s.entries, key)
	}
	s.mu.Unlock()
	return Entry{}, false
}

func (s *Store) usable(e Entry, now time.Time) bool {
	if e.DayStamp != now.In(s.loc).Format(dayStampLayout) {
		return false
	}
	if s.ttl > 0 && now.Sub(e.CreatedAt) >= s.ttl {
		return false
	}
	return true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	now := s.now()
	s.mu.Lock()
	s.entries[key] = Entry{
		Value:     value,
		DayStamp:  now.In(s.loc).Format(dayStampLayout),
		CreatedAt: now,
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// DeletePrefix removes every key starting with prefix and reports how many went.
func (s *Store) DeletePrefix(_ context.Context, prefix string) int {
	if prefix == "" {
		return 0
	}

	removed := 0
	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad serves key from the cache when fresh, otherwise runs loader once
// per key across concurrent callers and caches its result. The boolean
// reports whether the value came from the cache.
func (s *Store) GetOrLoad(ctx context.Context, key string, fresh FreshnessFunc, loader func(context.Context) (any, error)) (any, bool, error) {
	if loader == nil {
		return nil, false, crerr.New("loader is required")
	}
	if key == "" {
		value, err := loader(ctx)
		return value, false, err
	}

	if e, ok := s.GetFresh(ctx, key, fresh); ok {
		return e.Value, true, nil
	}

	type loaded struct {
		value  any
		cached bool
	}
	v, err, _ := s.flight.Do(key, func() (any, error) {
		if e, ok := s.GetFresh(ctx, key, fresh); ok {
			return loaded{value: e.Value, cached: true}, nil
		}

		value, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, value)
		return loaded{value: value}, nil
	})
	if err != nil {
		return nil, false, err
	}

	out, _ := v.(loaded)
	return out.value, out.cached, nil
}
