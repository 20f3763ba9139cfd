package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/domain/league"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// FixtureCache is the time-aware store for the daily list and fixture details.
type FixtureCache interface {
	Today() string
	GetList(ctx context.Context) (fixture.List, bool)
	LoadList(ctx context.Context, loader func(context.Context) (fixture.List, error)) (fixture.List, bool, error)
	DeleteList(ctx context.Context)
	LoadDetail(ctx context.Context, fixtureID string, loader func(context.Context) (fixture.Detail, error)) (fixture.Detail, bool, error)
	SetDetail(ctx context.Context, detail fixture.Detail)
	ClearDetails(ctx context.Context) int
}

type FixtureService struct {
	lists       fixture.ListSource
	details     fixture.DetailSource
	cache       FixtureCache
	filter      *league.Filter
	listGuard   *scrapeGuard
	detailGuard *scrapeGuard
	logger      *logging.Logger
}

func NewFixtureService(
	lists fixture.ListSource,
	details fixture.DetailSource,
	cache FixtureCache,
	filter *league.Filter,
	cfg ScrapeConfig,
	logger *logging.Logger,
	recorder ScrapeRecorder,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	if filter == nil {
		filter = league.DefaultFilter()
	}
	return &FixtureService{
		lists:       lists,
		details:     details,
		cache:       cache,
		filter:      filter,
		listGuard:   newScrapeGuard(sourceFixtureList, cfg, logger, recorder),
		detailGuard: newScrapeGuard(sourceFixtureDetail, cfg, logger, recorder),
		logger:      logger,
	}
}

// GetMatchList returns today's filtered fixture list, from the cache when it is
// still fresh. The boolean reports a cache hit.
func (s *FixtureService) GetMatchList(ctx context.Context) (fixture.List, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetMatchList")
	defer span.End()

	if s.lists == nil {
		return fixture.List{}, false, fmt.Errorf("%w: match list scraper is not configured", ErrDependencyUnavailable)
	}

	list, cached, err := s.cache.LoadList(ctx, s.scrapeList)
	if err != nil {
		return fixture.List{}, false, failSpan(span, classifyScrapeError(err))
	}
	span.SetAttributes(
		attribute.Bool("cache.hit", cached),
		attribute.Int("fixtures.count", len(list.Fixtures)),
	)
	return list, cached, nil
}

// RefreshMatchList drops the cached list and scrapes a new one.
func (s *FixtureService) RefreshMatchList(ctx context.Context) (fixture.List, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RefreshMatchList")
	defer span.End()

	s.cache.DeleteList(ctx)
	list, _, err := s.GetMatchList(ctx)
	return list, err
}

// CachedMatchList returns today's list only when it is already cached.
func (s *FixtureService) CachedMatchList(ctx context.Context) (fixture.List, bool) {
	return s.cache.GetList(ctx)
}

// GetFixtureDetail returns one fixture's detail, from the cache while its
// content-derived ttl holds.
func (s *FixtureService) GetFixtureDetail(ctx context.Context, fixtureID string) (fixture.Detail, bool, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetFixtureDetail", attribute.String("fixture.id", fixtureID))
	defer span.End()

	if fixtureID == "" {
		return fixture.Detail{}, false, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	if s.details == nil {
		return fixture.Detail{}, false, fmt.Errorf("%w: match detail scraper is not configured", ErrDependencyUnavailable)
	}

	detail, cached, err := s.cache.LoadDetail(ctx, fixtureID, func(ctx context.Context) (fixture.Detail, error) {
		return s.scrapeDetail(ctx, fixtureID)
	})
	if err != nil {
		return fixture.Detail{}, false, failSpan(span, classifyScrapeError(err))
	}
	span.SetAttributes(attribute.Bool("cache.hit", cached))
	return detail, cached, nil
}

// ScrapeFixtureDetail bypasses the cache read, scrapes the detail and stores it.
func (s *FixtureService) ScrapeFixtureDetail(ctx context.Context, fixtureID string) (fixture.Detail, error) {
	if s.details == nil {
		return fixture.Detail{}, fmt.Errorf("%w: match detail scraper is not configured", ErrDependencyUnavailable)
	}
	detail, err := s.scrapeDetail(ctx, fixtureID)
	if err != nil {
		return fixture.Detail{}, classifyScrapeError(err)
	}
	s.cache.SetDetail(ctx, detail)
	return detail, nil
}

// ClearDetails drops every cached fixture detail.
func (s *FixtureService) ClearDetails(ctx context.Context) int {
	return s.cache.ClearDetails(ctx)
}

// RetainForBulk applies the loose allow stage followed by the block list.
func (s *FixtureService) RetainForBulk(fixtures []fixture.Fixture) []fixture.Fixture {
	return s.filter.ApplyLoose(fixtures)
}

func (s *FixtureService) scrapeList(ctx context.Context) (fixture.List, error) {
	var items []fixture.Fixture
	err := s.listGuard.run(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.lists.ListFixtures(ctx, s.filter.AllowedEntries())
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "scrape match list failed", "error", err)
		return fixture.List{}, err
	}

	retained := s.filter.Apply(items)
	s.logger.InfoContext(ctx, "match list scraped",
		"scraped", len(items),
		"retained", len(retained),
	)
	return fixture.List{Date: s.cache.Today(), Fixtures: retained}, nil
}

func (s *FixtureService) scrapeDetail(ctx context.Context, fixtureID string) (fixture.Detail, error) {
	var detail fixture.Detail
	err := s.detailGuard.run(ctx, func(ctx context.Context) error {
		var err error
		detail, err = s.details.FixtureDetail(ctx, fixtureID)
		return err
	})
	if err != nil {
		s.logger.WarnContext(ctx, "scrape fixture detail failed", "fixture_id", fixtureID, "error", err)
		return fixture.Detail{}, err
	}
	if detail.ID == "" {
		detail.ID = fixtureID
	}
	return detail, nil
}
