package observability

import (
	"context"
	"sync"
	"time"
)

// Common metric attribute keys.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrSource = "source"
	AttrKind   = "kind"
	AttrResult = "result"
)

type scrapeStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder keeps in-process counters for scrapes, cache lookups,
// reconciliations and bulk jobs, and forwards them to OpenTelemetry
// instruments when Setup enabled them.
type Recorder struct {
	mu        sync.Mutex
	scrapes   map[string]*scrapeStats
	cache     map[string]*cacheStats
	jobs      map[string]int
	matched   int
	unmatched int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		scrapes: make(map[string]*scrapeStats),
		cache:   make(map[string]*cacheStats),
		jobs:    make(map[string]int),
		otel:    otel,
	}
}

// RecordScrape counts one guarded scrape of source after its retries.
func (r *Recorder) RecordScrape(ctx context.Context, source string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.scrapes[source]
	if !ok {
		stats = &scrapeStats{}
		r.scrapes[source] = stats
	}
	stats.calls++
	stats.lastLatency = elapsed
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordScrape(ctx, source, err, elapsed)
}

func (r *Recorder) RecordCacheLookup(ctx context.Context, kind string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.cache[kind]
	if !ok {
		stats = &cacheStats{}
		r.cache[kind] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	r.otel.recordCacheLookup(ctx, kind, hit)
}

func (r *Recorder) RecordReconcile(ctx context.Context, matched, unmatched int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.matched += matched
	r.unmatched += unmatched
	r.mu.Unlock()

	r.otel.recordReconcile(ctx, matched, unmatched)
}

// RecordJob counts a bulk job reaching a terminal status.
func (r *Recorder) RecordJob(ctx context.Context, status string, scraped, failed int, elapsed time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.jobs[status]++
	r.mu.Unlock()

	r.otel.recordJob(ctx, status, scraped, failed, elapsed)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(ctx, method, path, status, duration)
}

// Snapshot is a copy of the in-process counters.
type Snapshot struct {
	ScrapeCalls     map[string]int
	ScrapeErrors    map[string]int
	LastScrape      map[string]time.Duration
	CacheHits       map[string]int
	CacheMisses     map[string]int
	Jobs            map[string]int
	MatchedQuotes   int
	UnmatchedQuotes int
}

func (r *Recorder) Snapshot() Snapshot {
	out := Snapshot{
		ScrapeCalls:  map[string]int{},
		ScrapeErrors: map[string]int{},
		LastScrape:   map[string]time.Duration{},
		CacheHits:    map[string]int{},
		CacheMisses:  map[string]int{},
		Jobs:         map[string]int{},
	}
	if r == nil {
		return out
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for source, stats := range r.scrapes {
		out.ScrapeCalls[source] = stats.calls
		out.ScrapeErrors[source] = stats.errors
		out.LastScrape[source] = stats.lastLatency
	}
	for kind, stats := range r.cache {
		out.CacheHits[kind] = stats.hits
		out.CacheMisses[kind] = stats.misses
	}
	for status, count := range r.jobs {
		out.Jobs[status] = count
	}
	out.MatchedQuotes = r.matched
	out.UnmatchedQuotes = r.unmatched
	return out
}
