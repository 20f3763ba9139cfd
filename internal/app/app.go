package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/matchodds/external/browser"
	"github.com/riskibarqy/matchodds/external/flashscore"
	"github.com/riskibarqy/matchodds/external/mozzart"
	"github.com/riskibarqy/matchodds/internal/config"
	"github.com/riskibarqy/matchodds/internal/domain/league"
	"github.com/riskibarqy/matchodds/internal/domain/teamname"
	fixturecache "github.com/riskibarqy/matchodds/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchodds/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchodds/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchodds/internal/observability"
	basecache "github.com/riskibarqy/matchodds/internal/platform/cache"
	idgen "github.com/riskibarqy/matchodds/internal/platform/id"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"github.com/riskibarqy/matchodds/internal/platform/resilience"
	"github.com/riskibarqy/matchodds/internal/usecase"
)

// App owns the HTTP server together with every long-lived collaborator that
// must be released on shutdown.
type App struct {
	Server *http.Server
	Jobs   *usecase.ScrapeJobService

	browser         *browser.Pool
	shutdownMetrics func(context.Context) error
	logger          *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	recorder, metricsHandler, shutdownMetrics, err := observability.SetupMetrics(ctx, observability.MetricsConfig{
		Enabled:      cfg.MetricsEnabled,
		ServiceName:  cfg.ServiceName,
		OTLPEndpoint: cfg.MetricsOTLPEndpoint,
		OTLPInsecure: cfg.MetricsOTLPInsecure,
	})
	if err != nil {
		return nil, fmt.Errorf("setup metrics: %w", err)
	}

	pool := browser.NewPool(browser.Config{
		MaxPages: cfg.BrowserMaxPages,
		Headless: cfg.BrowserHeadless,
		ExecPath: cfg.BrowserExecPath,
		Logger:   logger,
	})
	scores := flashscore.NewClient(pool, flashscore.ClientConfig{
		BaseURL:  cfg.FlashscoreBaseURL,
		Location: cfg.Location,
		Logger:   logger,
	})
	bookmaker := mozzart.NewClient(pool, mozzart.ClientConfig{
		URL:    cfg.MozzartOddsURL,
		Logger: logger,
	})

	store := basecache.NewStore(0, basecache.WithLocation(cfg.Location))
	fixtures := fixturecache.NewFixtureCache(store, cfg.ListCacheMaxAge, recorder)

	scrapeCfg := usecase.ScrapeConfig{
		Retry: resilience.RetryConfig{
			MaxAttempts:    cfg.ScrapeMaxAttempts,
			Delay:          cfg.ScrapeRetryDelay,
			AttemptTimeout: cfg.ScrapeTimeout,
		},
		Breaker: resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
			Enabled:          cfg.ScraperCircuitEnabled,
			FailureThreshold: cfg.ScraperCircuitFailureCount,
			OpenTimeout:      cfg.ScraperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ScraperCircuitHalfOpenMaxReq,
		}),
	}

	fixtureSvc := usecase.NewFixtureService(
		scores,
		scores,
		fixtures,
		league.DefaultFilter(),
		scrapeCfg,
		logger,
		recorder,
	)
	jobSvc := usecase.NewScrapeJobService(
		fixtureSvc,
		memory.NewJobRepository(idgen.NewPrefixedGenerator("job"), nil),
		usecase.ScrapeJobConfig{
			Concurrency: cfg.ScrapeConcurrency,
			Retention:   cfg.JobRetention,
		},
		logger,
		recorder,
	)
	oddsSvc := usecase.NewOddsService(
		fixtureSvc,
		bookmaker,
		memory.NewOddsRepository(),
		teamname.NewMatcher(teamname.Default()),
		scrapeCfg,
		logger,
		recorder,
		recorder,
	)

	handler := httpapi.NewHandler(fixtureSvc, jobSvc, oddsSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		APIKey:             cfg.APIKey,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsHandler:     metricsHandler,
		Recorder:           recorder,
	}, logger)

	return &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		Jobs:            jobSvc,
		browser:         pool,
		shutdownMetrics: shutdownMetrics,
		logger:          logger,
	}, nil
}

// RunJobCleanup drops expired scrape jobs every interval until ctx is done.
func (a *App) RunJobCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.Jobs.Cleanup(ctx); err != nil {
				a.logger.WarnContext(ctx, "scrape job cleanup failed", "error", err)
			}
		}
	}
}

// Close waits for running scrape jobs until ctx expires, then releases the
// browser and flushes metrics.
func (a *App) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.Jobs.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		a.logger.Warn("shutdown with scrape jobs still running")
	}

	a.browser.Close()

	var errs []error
	if a.shutdownMetrics != nil {
		if err := a.shutdownMetrics(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}
