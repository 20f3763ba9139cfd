package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/domain/job"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel/attribute"
)

const defaultScrapeConcurrency = 3

// FixtureProvider is the slice of FixtureService a bulk job needs.
type FixtureProvider interface {
	GetMatchList(ctx context.Context) (fixture.List, bool, error)
	RefreshMatchList(ctx context.Context) (fixture.List, error)
	ScrapeFixtureDetail(ctx context.Context, fixtureID string) (fixture.Detail, error)
	ClearDetails(ctx context.Context) int
	RetainForBulk(fixtures []fixture.Fixture) []fixture.Fixture
}

// JobRecorder observes finished bulk jobs.
type JobRecorder interface {
	RecordJob(ctx context.Context, status string, scraped, failed int, elapsed time.Duration)
}

type ScrapeJobConfig struct {
	Concurrency int
	Retention   time.Duration
}

type ScrapeJobService struct {
	fixtures FixtureProvider
	jobs     job.Repository
	cfg      ScrapeJobConfig
	logger   *logging.Logger
	recorder JobRecorder

	// background is the parent of every job run; runs outlive the request
	// that started them.
	background context.Context
	running    sync.WaitGroup
}

func NewScrapeJobService(
	fixtures FixtureProvider,
	jobs job.Repository,
	cfg ScrapeJobConfig,
	logger *logging.Logger,
	recorder JobRecorder,
) *ScrapeJobService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultScrapeConcurrency
	}
	if cfg.Retention <= 0 {
		cfg.Retention = time.Hour
	}
	return &ScrapeJobService{
		fixtures:   fixtures,
		jobs:       jobs,
		cfg:        cfg,
		logger:     logger,
		recorder:   recorder,
		background: context.Background(),
	}
}

// Start registers a bulk detail scrape and runs it in the background. It
// returns as soon as the job exists.
func (s *ScrapeJobService) Start(ctx context.Context, forceRefresh bool) (job.Job, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScrapeJobService.Start", attribute.Bool("job.force_refresh", forceRefresh))
	defer span.End()

	created, err := s.jobs.Create(ctx)
	if err != nil {
		return job.Job{}, fmt.Errorf("create scrape job: %w", err)
	}

	logger := s.logger.With("job_id", created.ID)
	logger.InfoContext(ctx, "bulk scrape job created", "force_refresh", forceRefresh)

	s.running.Add(1)
	go func() {
		defer s.running.Done()
		s.run(s.background, created.ID, forceRefresh, logger)
	}()

	return created, nil
}

// Wait blocks until every started job has finished running.
func (s *ScrapeJobService) Wait() {
	s.running.Wait()
}

func (s *ScrapeJobService) Get(ctx context.Context, jobID string) (job.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return job.Job{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	item, err := s.jobs.Get(ctx, jobID)
	if errors.Is(err, job.ErrNotFound) {
		return job.Job{}, fmt.Errorf("%w: job=%s", ErrNotFound, jobID)
	}
	if err != nil {
		return job.Job{}, fmt.Errorf("get scrape job: %w", err)
	}
	return item, nil
}

// List drops expired terminal jobs, then returns the rest newest first.
func (s *ScrapeJobService) List(ctx context.Context) ([]job.Job, error) {
	if _, err := s.Cleanup(ctx); err != nil {
		return nil, err
	}
	items, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scrape jobs: %w", err)
	}
	return items, nil
}

func (s *ScrapeJobService) Cleanup(ctx context.Context) (int, error) {
	removed, err := s.jobs.Cleanup(ctx, s.cfg.Retention)
	if err != nil {
		return 0, fmt.Errorf("cleanup scrape jobs: %w", err)
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "expired scrape jobs removed", "removed", removed)
	}
	return removed, nil
}

func (s *ScrapeJobService) run(ctx context.Context, jobID string, forceRefresh bool, logger *logging.Logger) {
	started := time.Now()
	if _, err := s.jobs.UpdateStatus(ctx, jobID, job.StatusRunning, job.Update{}); err != nil {
		logger.ErrorContext(ctx, "start scrape job failed", "error", err)
		return
	}

	var result job.BulkResult
	var runErr error
	recovered := panics.Try(func() {
		result, runErr = s.scrapeAll(ctx, jobID, forceRefresh, logger)
	})
	if recovered != nil {
		runErr = recovered.AsError()
	}

	if runErr != nil {
		logger.ErrorContext(ctx, "bulk scrape job failed", "error", runErr)
		if _, err := s.jobs.UpdateStatus(ctx, jobID, job.StatusFailed, job.Update{Error: runErr.Error()}); err != nil {
			logger.ErrorContext(ctx, "mark scrape job failed", "error", err)
		}
		s.record(ctx, job.StatusFailed, 0, 0, time.Since(started))
		return
	}

	if _, err := s.jobs.UpdateStatus(ctx, jobID, job.StatusCompleted, job.Update{Result: &result}); err != nil {
		logger.ErrorContext(ctx, "mark scrape job completed", "error", err)
		return
	}
	logger.InfoContext(ctx, "bulk scrape job completed",
		"scraped", result.TotalScraped,
		"failed", len(result.Errors),
		"leagues", len(result.Leagues),
		"elapsed", time.Since(started),
	)
	s.record(ctx, job.StatusCompleted, result.TotalScraped, len(result.Errors), time.Since(started))
}

func (s *ScrapeJobService) scrapeAll(ctx context.Context, jobID string, forceRefresh bool, logger *logging.Logger) (job.BulkResult, error) {
	var (
		list fixture.List
		err  error
	)
	if forceRefresh {
		cleared := s.fixtures.ClearDetails(ctx)
		logger.InfoContext(ctx, "detail cache cleared for forced refresh", "removed", cleared)
		list, err = s.fixtures.RefreshMatchList(ctx)
	} else {
		list, _, err = s.fixtures.GetMatchList(ctx)
	}
	if err != nil {
		return job.BulkResult{}, fmt.Errorf("load match list: %w", err)
	}

	targets := s.fixtures.RetainForBulk(list.Fixtures)
	total := len(targets)
	if err := s.jobs.UpdateProgress(ctx, jobID, 0, total); err != nil {
		return job.BulkResult{}, fmt.Errorf("publish progress: %w", err)
	}
	if total == 0 {
		return job.BulkResult{Leagues: []string{}, Errors: []string{}}, nil
	}

	pool, err := ants.NewPool(s.cfg.Concurrency)
	if err != nil {
		return job.BulkResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		completed atomic.Int64
		mu        sync.Mutex
		leagues   = make(map[string]struct{})
		failures  = make([]string, 0)
		workers   sync.WaitGroup
	)

	for _, target := range targets {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			var scrapeErr error
			recovered := panics.Try(func() {
				_, scrapeErr = s.fixtures.ScrapeFixtureDetail(ctx, target.ID)
			})
			if recovered != nil {
				scrapeErr = recovered.AsError()
			}

			mu.Lock()
			if scrapeErr != nil {
				failures = append(failures, fmt.Sprintf("%s: %s", target.ID, scrapeErr.Error()))
			} else if target.League != "" {
				leagues[target.League] = struct{}{}
			}
			mu.Unlock()

			if scrapeErr != nil {
				logger.WarnContext(ctx, "fixture detail scrape failed", "fixture_id", target.ID, "error", scrapeErr)
			}

			done := completed.Add(1)
			if err := s.jobs.UpdateProgress(ctx, jobID, int(done), total); err != nil {
				logger.WarnContext(ctx, "publish progress failed", "error", err)
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return job.BulkResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result := job.BulkResult{
		TotalScraped: total - len(failures),
		Leagues:      make([]string, 0, len(leagues)),
		Errors:       failures,
	}
	for name := range leagues {
		result.Leagues = append(result.Leagues, name)
	}
	sort.Strings(result.Leagues)
	sort.Strings(result.Errors)
	return result, nil
}

func (s *ScrapeJobService) record(ctx context.Context, status job.Status, scraped, failed int, elapsed time.Duration) {
	if s.recorder != nil {
		s.recorder.RecordJob(ctx, string(status), scraped, failed, elapsed)
	}
}
