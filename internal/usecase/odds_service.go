package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/domain/odds"
	"github.com/riskibarqy/matchodds/internal/domain/teamname"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// CachedListReader exposes today's cached fixture list without scraping it.
type CachedListReader interface {
	CachedMatchList(ctx context.Context) (fixture.List, bool)
}

// ReconcileRecorder observes reconciliation outcomes.
type ReconcileRecorder interface {
	RecordReconcile(ctx context.Context, matched, unmatched int)
}

type OddsService struct {
	lists    CachedListReader
	quotes   odds.QuoteSource
	repo     odds.Repository
	matcher  *teamname.Matcher
	guard    *scrapeGuard
	logger   *logging.Logger
	recorder ReconcileRecorder
	now      func() time.Time
}

func NewOddsService(
	lists CachedListReader,
	quotes odds.QuoteSource,
	repo odds.Repository,
	matcher *teamname.Matcher,
	cfg ScrapeConfig,
	logger *logging.Logger,
	scrapeRecorder ScrapeRecorder,
	reconcileRecorder ReconcileRecorder,
) *OddsService {
	if logger == nil {
		logger = logging.Default()
	}
	if matcher == nil {
		matcher = teamname.NewMatcher(nil)
	}
	return &OddsService{
		lists:    lists,
		quotes:   quotes,
		repo:     repo,
		matcher:  matcher,
		guard:    newScrapeGuard(sourceOdds, cfg, logger, scrapeRecorder),
		logger:   logger,
		recorder: reconcileRecorder,
		now:      time.Now,
	}
}

// Reconcile scrapes the bookmaker offer and links every quote to the first
// cached fixture whose home and away names both match. Quotes with no such
// fixture are reported as unmatched.
func (s *OddsService) Reconcile(ctx context.Context) (odds.ReconcileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.Reconcile")
	defer span.End()

	list, ok := s.lists.CachedMatchList(ctx)
	if !ok || len(list.Fixtures) == 0 {
		return odds.ReconcileResult{}, fmt.Errorf("%w: no fixtures in cache, load the match list first", ErrPreconditionFailed)
	}
	if s.quotes == nil {
		return odds.ReconcileResult{}, fmt.Errorf("%w: odds scraper is not configured", ErrDependencyUnavailable)
	}

	var quotes []odds.Quote
	err := s.guard.run(ctx, func(ctx context.Context) error {
		var err error
		quotes, err = s.quotes.Quotes(ctx)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "scrape odds failed", "error", err)
		return odds.ReconcileResult{}, failSpan(span, classifyScrapeError(err))
	}

	result := s.match(list.Fixtures, quotes)
	if len(result.Matched) > 0 {
		if err := s.repo.Upsert(ctx, result.Matched...); err != nil {
			return odds.ReconcileResult{}, failSpan(span, fmt.Errorf("store reconciled odds: %w", err))
		}
	}

	if s.recorder != nil {
		s.recorder.RecordReconcile(ctx, result.MatchedCount, len(result.Unmatched))
	}
	span.SetAttributes(
		attribute.Int("odds.quotes", result.TotalQuotes),
		attribute.Int("odds.matched", result.MatchedCount),
	)
	s.logger.InfoContext(ctx, "odds reconciled",
		"quotes", result.TotalQuotes,
		"fixtures", result.TotalFixtures,
		"matched", result.MatchedCount,
		"unmatched", len(result.Unmatched),
	)
	return result, nil
}

func (s *OddsService) match(fixtures []fixture.Fixture, quotes []odds.Quote) odds.ReconcileResult {
	result := odds.ReconcileResult{
		Matched:       make([]odds.Entry, 0, len(quotes)),
		Unmatched:     make([]odds.Quote, 0),
		TotalQuotes:   len(quotes),
		TotalFixtures: len(fixtures),
	}
	scrapedAt := s.now()

	for _, quote := range quotes {
		matched := false
		for _, item := range fixtures {
			if !s.matcher.FixtureMatches(item.HomeTeam.Name, item.AwayTeam.Name, quote.HomeTeam, quote.AwayTeam) {
				continue
			}
			result.Matched = append(result.Matched, odds.Entry{
				FixtureID:     item.ID,
				FixtureHome:   item.HomeTeam.Name,
				FixtureAway:   item.AwayTeam.Name,
				BookmakerHome: quote.HomeTeam,
				BookmakerAway: quote.AwayTeam,
				Prices:        quote.Prices,
				ScrapedAt:     scrapedAt,
			})
			matched = true
			break
		}
		if !matched {
			result.Unmatched = append(result.Unmatched, quote)
		}
	}

	result.MatchedCount = len(result.Matched)
	return result
}

func (s *OddsService) List(ctx context.Context) ([]odds.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reconciled odds: %w", err)
	}
	return items, nil
}

func (s *OddsService) Get(ctx context.Context, fixtureID string) (odds.Entry, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.Get", attribute.String("fixture.id", fixtureID))
	defer span.End()

	if fixtureID == "" {
		return odds.Entry{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	entry, ok, err := s.repo.Get(ctx, fixtureID)
	if err != nil {
		return odds.Entry{}, fmt.Errorf("get reconciled odds: %w", err)
	}
	if !ok {
		return odds.Entry{}, fmt.Errorf("%w: odds for fixture=%s", ErrNotFound, fixtureID)
	}
	return entry, nil
}

// Clear drops every reconciled entry and reports how many were removed.
func (s *OddsService) Clear(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.Clear")
	defer span.End()

	removed, err := s.repo.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear reconciled odds: %w", err)
	}
	s.logger.InfoContext(ctx, "reconciled odds cleared", "removed", removed)
	return removed, nil
}
