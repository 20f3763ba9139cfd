package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/domain/league"
	fixturemock "github.com/riskibarqy/matchodds/internal/mocks/domain/fixture"
	"github.com/stretchr/testify/mock"
)

func TestFixtureService_GetFixtureDetail_CachedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lists := fixturemock.NewListSource(t)
	details := fixturemock.NewDetailSource(t)
	service := NewFixtureService(lists, details, newTestFixtureCache(), league.DefaultFilter(), testScrapeConfig(), nil, nil)

	details.
		On("FixtureDetail", mock.Anything, "fx-001").
		Return(fixture.Detail{
			League:   "England: Premier League",
			HomeTeam: fixture.Team{Name: "Arsenal"},
			AwayTeam: fixture.Team{Name: "Chelsea"},
			Time:     "05.01.2026 20:00",
			Score:    fixture.ScoreNotStarted,
		}, nil).
		Once()

	first, cached, err := service.GetFixtureDetail(ctx, " fx-001 ")
	if err != nil {
		t.Fatalf("first detail: %v", err)
	}
	if cached {
		t.Fatalf("first call must scrape")
	}
	if first.ID != "fx-001" {
		t.Fatalf("expected id to be backfilled, got %q", first.ID)
	}

	second, cached, err := service.GetFixtureDetail(ctx, "fx-001")
	if err != nil {
		t.Fatalf("second detail: %v", err)
	}
	if !cached || second.HomeTeam.Name != "Arsenal" {
		t.Fatalf("expected cached detail, cached=%v detail=%+v", cached, second)
	}
}

func TestFixtureService_GetFixtureDetail_ConcurrentLoadsCollapseUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lists := fixturemock.NewListSource(t)
	details := fixturemock.NewDetailSource(t)
	service := NewFixtureService(lists, details, newTestFixtureCache(), league.DefaultFilter(), testScrapeConfig(), nil, nil)

	release := make(chan struct{})
	details.
		On("FixtureDetail", mock.Anything, "fx-002").
		Run(func(mock.Arguments) { <-release }).
		Return(fixture.Detail{ID: "fx-002", Time: "20:00", Score: fixture.ScoreNotStarted}, nil).
		Once()

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			if _, _, err := service.GetFixtureDetail(ctx, "fx-002"); err != nil {
				errs <- err
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
}
