package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/matchodds/internal/domain/odds"
)

// OddsRepository keeps reconciled entries for the process lifetime, keyed by
// fixture ID. A later upsert for the same fixture replaces the earlier one.
type OddsRepository struct {
	mu      sync.RWMutex
	entries map[string]odds.Entry
}

func NewOddsRepository() *OddsRepository {
	return &OddsRepository{entries: make(map[string]odds.Entry)}
}

func (r *OddsRepository) Upsert(_ context.Context, entries ...odds.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		if entry.FixtureID == "" {
			continue
		}
		r.entries[entry.FixtureID] = entry
	}
	return nil
}

func (r *OddsRepository) List(_ context.Context) ([]odds.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]odds.Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FixtureID < out[j].FixtureID
	})
	return out, nil
}

func (r *OddsRepository) Get(_ context.Context, fixtureID string) (odds.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[fixtureID]
	return entry, ok, nil
}

func (r *OddsRepository) Clear(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.entries)
	r.entries = make(map[string]odds.Entry)
	return count, nil
}
