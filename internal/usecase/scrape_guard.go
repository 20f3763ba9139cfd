package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"github.com/riskibarqy/matchodds/internal/platform/resilience"
)

const (
	sourceFixtureList   = "fixture_list"
	sourceFixtureDetail = "fixture_detail"
	sourceOdds          = "odds"
)

// ScrapeRecorder observes every guarded scrape once its retries are exhausted.
type ScrapeRecorder interface {
	RecordScrape(ctx context.Context, source string, err error, elapsed time.Duration)
}

// ScrapeConfig is shared by every service that talks to an upstream page.
type ScrapeConfig struct {
	Retry   resilience.RetryConfig
	Breaker resilience.CircuitBreakerConfig
}

// scrapeGuard runs one upstream call with retry behind a circuit breaker.
type scrapeGuard struct {
	source   string
	retry    resilience.RetryConfig
	breaker  *resilience.CircuitBreaker
	logger   *logging.Logger
	recorder ScrapeRecorder
}

func newScrapeGuard(source string, cfg ScrapeConfig, logger *logging.Logger, recorder ScrapeRecorder) *scrapeGuard {
	logger = logger.With("source", source)
	var breaker *resilience.CircuitBreaker
	if cfg.Breaker.Enabled {
		breaker = resilience.NewCircuitBreaker(source, cfg.Breaker, func(name string, from, to resilience.CircuitState) {
			logger.Warn("scraper circuit state changed", "breaker", name, "from", from, "to", to)
		})
	}
	return &scrapeGuard{
		source:   source,
		retry:    resilience.NormalizeRetryConfig(cfg.Retry),
		breaker:  breaker,
		logger:   logger,
		recorder: recorder,
	}
}

func (g *scrapeGuard) run(ctx context.Context, fn func(context.Context) error) error {
	started := time.Now()
	err := resilience.Retry(ctx, g.retry, func(ctx context.Context, attempt int) error {
		err := g.breaker.Execute(ctx, func(ctx context.Context) error {
			err := fn(ctx)
			if errors.Is(err, fixture.ErrNotFound) {
				return resilience.MarkPermanent(err)
			}
			return err
		})
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return resilience.MarkPermanent(err)
		}
		return err
	}, func(attempt int, err error, wait time.Duration) {
		g.logger.WarnContext(ctx, "scrape attempt failed, retrying",
			"attempt", attempt,
			"max_attempts", g.retry.MaxAttempts,
			"wait", wait,
			"error", err,
		)
	})
	if g.recorder != nil {
		g.recorder.RecordScrape(ctx, g.source, err, time.Since(started))
	}
	return err
}

// classifyScrapeError keeps not-found distinct from every other scrape failure.
func classifyScrapeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fixture.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrScrapeFailed, err)
}
