package cache

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	basecache "github.com/riskibarqy/matchodds/internal/platform/cache"
)

const (
	listKeyPrefix   = "matches-"
	detailKeyPrefix = "match-"

	DefaultListMaxAge = 30 * time.Minute

	detailFinishedTTL   = time.Hour
	detailInProgressTTL = 15 * time.Minute
	finishedAfter       = 2 * time.Hour
)

const (
	KindList   = "list"
	KindDetail = "detail"
)

// LookupRecorder counts cache lookups per payload kind.
type LookupRecorder interface {
	RecordCacheLookup(ctx context.Context, kind string, hit bool)
}

// FixtureCache layers the list and detail freshness policies on top of the
// day-stamped store.
type FixtureCache struct {
	store      *basecache.Store
	listMaxAge time.Duration
	recorder   LookupRecorder
}

func NewFixtureCache(store *basecache.Store, listMaxAge time.Duration, recorder LookupRecorder) *FixtureCache {
	if listMaxAge <= 0 {
		listMaxAge = DefaultListMaxAge
	}
	return &FixtureCache{store: store, listMaxAge: listMaxAge, recorder: recorder}
}

// ListKey returns the list key for today, e.g. "matches-2026-01-05".
func (c *FixtureCache) ListKey() string {
	return listKeyPrefix + c.store.DayStamp()
}

func DetailKey(fixtureID string) string {
	return detailKeyPrefix + fixtureID
}

// Today returns the current day stamp.
func (c *FixtureCache) Today() string {
	return c.store.DayStamp()
}

func (c *FixtureCache) GetList(ctx context.Context) (fixture.List, bool) {
	entry, ok := c.store.GetFresh(ctx, c.ListKey(), c.listFresh)
	c.record(ctx, KindList, ok)
	if !ok {
		return fixture.List{}, false
	}
	list, ok := entry.Value.(fixture.List)
	return cloneList(list), ok
}

func (c *FixtureCache) SetList(ctx context.Context, list fixture.List) {
	c.store.Set(ctx, c.ListKey(), cloneList(list))
}

func (c *FixtureCache) DeleteList(ctx context.Context) {
	c.store.Delete(ctx, c.ListKey())
}

// LoadList serves today's list when fresh, otherwise loads and stores it.
// Concurrent loads are collapsed into one.
func (c *FixtureCache) LoadList(ctx context.Context, loader func(context.Context) (fixture.List, error)) (fixture.List, bool, error) {
	v, cached, err := c.store.GetOrLoad(ctx, c.ListKey(), c.listFresh, func(ctx context.Context) (any, error) {
		list, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		return cloneList(list), nil
	})
	c.record(ctx, KindList, cached)
	if err != nil {
		return fixture.List{}, false, err
	}
	list, _ := v.(fixture.List)
	return cloneList(list), cached, nil
}

func (c *FixtureCache) GetDetail(ctx context.Context, fixtureID string) (fixture.Detail, bool) {
	entry, ok := c.store.GetFresh(ctx, DetailKey(fixtureID), c.detailFresh)
	c.record(ctx, KindDetail, ok)
	if !ok {
		return fixture.Detail{}, false
	}
	detail, ok := entry.Value.(fixture.Detail)
	return detail, ok
}

func (c *FixtureCache) SetDetail(ctx context.Context, detail fixture.Detail) {
	if detail.ID == "" {
		return
	}
	c.store.Set(ctx, DetailKey(detail.ID), detail)
}

func (c *FixtureCache) DeleteDetail(ctx context.Context, fixtureID string) {
	c.store.Delete(ctx, DetailKey(fixtureID))
}

func (c *FixtureCache) LoadDetail(ctx context.Context, fixtureID string, loader func(context.Context) (fixture.Detail, error)) (fixture.Detail, bool, error) {
	v, cached, err := c.store.GetOrLoad(ctx, DetailKey(fixtureID), c.detailFresh, func(ctx context.Context) (any, error) {
		detail, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		return detail, nil
	})
	c.record(ctx, KindDetail, cached)
	if err != nil {
		return fixture.Detail{}, false, err
	}
	detail, _ := v.(fixture.Detail)
	return detail, cached, nil
}

// ClearDetails drops every cached detail and reports how many went.
func (c *FixtureCache) ClearDetails(ctx context.Context) int {
	return c.store.DeletePrefix(ctx, detailKeyPrefix)
}

// Clear drops lists and details.
func (c *FixtureCache) Clear(ctx context.Context) int {
	return c.store.DeletePrefix(ctx, listKeyPrefix) + c.store.DeletePrefix(ctx, detailKeyPrefix)
}

func (c *FixtureCache) listFresh(entry basecache.Entry, now time.Time) bool {
	return ListFresh(entry, now, c.listMaxAge, c.store.Location())
}

func (c *FixtureCache) detailFresh(entry basecache.Entry, now time.Time) bool {
	detail, ok := entry.Value.(fixture.Detail)
	if !ok {
		return false
	}
	return now.Sub(entry.CreatedAt) < DetailTTL(detail, entry.CreatedAt, c.store.Location())
}

func (c *FixtureCache) record(ctx context.Context, kind string, hit bool) {
	if c.recorder != nil {
		c.recorder.RecordCacheLookup(ctx, kind, hit)
	}
}

// ListFresh rejects a cached list older than maxAge, or one holding a fixture
// whose kickoff fell strictly between caching and now.
func ListFresh(entry basecache.Entry, now time.Time, maxAge time.Duration, loc *time.Location) bool {
	if now.Sub(entry.CreatedAt) > maxAge {
		return false
	}
	list, ok := entry.Value.(fixture.List)
	if !ok {
		return false
	}
	for _, item := range list.Fixtures {
		kickoff := fixture.ParseKickoff(item.Time, now, loc)
		if kickoff.After(entry.CreatedAt) && kickoff.Before(now) {
			return false
		}
	}
	return true
}

// DetailTTL derives how long a detail written at createdAt stays fresh:
// until kickoff when it is ahead, an hour once a scored fixture is more than
// two hours past kickoff, fifteen minutes otherwise.
func DetailTTL(detail fixture.Detail, createdAt time.Time, loc *time.Location) time.Duration {
	kickoff := fixture.ParseKickoff(detailKickoff(detail), createdAt, loc)
	switch {
	case kickoff.After(createdAt):
		return kickoff.Sub(createdAt)
	case detail.HasScore() && createdAt.Sub(kickoff) > finishedAfter:
		return detailFinishedTTL
	default:
		return detailInProgressTTL
	}
}

func detailKickoff(detail fixture.Detail) string {
	raw := strings.TrimSpace(detail.Time)
	if strings.Contains(detail.Date, ".") && !strings.Contains(raw, ".") {
		raw = strings.TrimSpace(detail.Date + " " + raw)
	}
	return raw
}

func cloneList(list fixture.List) fixture.List {
	return fixture.List{
		Date:     list.Date,
		Fixtures: append([]fixture.Fixture(nil), list.Fixtures...),
	}
}
