package mozzart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/matchodds/internal/domain/odds"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeBrowser struct {
	main      string
	goals     string
	hasTab    bool
	onGoals   bool
	scrollErr error
	navErr    error
	scrolled  int
	url       string
}

func (b *fakeBrowser) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (b *fakeBrowser) Navigate(_ context.Context, url, _ string) error {
	b.url = url
	return b.navErr
}

func (b *fakeBrowser) Snapshot(context.Context) (string, error) {
	if b.onGoals {
		return b.goals, nil
	}
	return b.main, nil
}

func (b *fakeBrowser) ClickText(_ context.Context, _, text string) (bool, error) {
	if !b.hasTab || text != goalsTabLabel {
		return false, nil
	}
	b.onGoals = true
	return true, nil
}

func (b *fakeBrowser) DismissOverlays(context.Context, ...string) {}

func (b *fakeBrowser) ScrollUntilStable(_ context.Context, _ string, maxRounds int, _ time.Duration) (int, error) {
	b.scrolled = maxRounds
	return 2, b.scrollErr
}

func TestClient_QuotesMergesGoals(t *testing.T) {
	t.Parallel()

	b := &fakeBrowser{
		main:   matchRow("Napoli", "Roma", "20:45", "1.90", "3.40", "4.00"),
		goals:  matchRow("Napoli", "Roma", "20:45", "1.70", "2.05"),
		hasTab: true,
	}
	client := NewClient(b, ClientConfig{})

	quotes, err := client.Quotes(context.Background())
	if err != nil {
		t.Fatalf("Quotes error: %v", err)
	}
	if b.url != DefaultURL {
		t.Fatalf("unexpected url %q", b.url)
	}
	if b.scrolled != defaultScrollRounds {
		t.Fatalf("expected %d scroll rounds, got %d", defaultScrollRounds, b.scrolled)
	}
	if len(quotes) != 1 || quotes[0].Prices.GG != "1.70" || quotes[0].Prices.GG3 != odds.NotOffered {
		t.Fatalf("unexpected quotes %+v", quotes)
	}
}

func TestClient_QuotesWithoutGoalsTab(t *testing.T) {
	t.Parallel()

	b := &fakeBrowser{main: matchRow("Napoli", "Roma", "20:45", "1.90", "3.40", "4.00")}
	quotes, err := NewClient(b, ClientConfig{URL: "https://odds.test"}).Quotes(context.Background())
	if err != nil {
		t.Fatalf("Quotes error: %v", err)
	}
	if len(quotes) != 1 || quotes[0].Prices.GG != odds.NotOffered {
		t.Fatalf("unexpected quotes %+v", quotes)
	}
	if b.scrolled != 0 {
		t.Fatalf("must not scroll without the goals tab")
	}
}

func TestClient_QuotesSurvivesGoalsFailure(t *testing.T) {
	t.Parallel()

	b := &fakeBrowser{
		main:      matchRow("Napoli", "Roma", "20:45", "1.90", "3.40", "4.00"),
		hasTab:    true,
		scrollErr: errors.New("tab crashed"),
	}
	quotes, err := NewClient(b, ClientConfig{}).Quotes(context.Background())
	if err != nil {
		t.Fatalf("Quotes error: %v", err)
	}
	if len(quotes) != 1 || quotes[0].Prices.Home != "1.90" {
		t.Fatalf("expected main markets, got %+v", quotes)
	}
}

func TestClient_QuotesNavigationError(t *testing.T) {
	t.Parallel()

	b := &fakeBrowser{navErr: errors.New("timeout")}
	if _, err := NewClient(b, ClientConfig{}).Quotes(context.Background()); !errors.Is(err, b.navErr) {
		t.Fatalf("expected navigation error, got %v", err)
	}
}

func TestClient_QuotesLogsOfferedPrices(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(logging.LevelDebug)
	b := &fakeBrowser{
		main:   matchRow("Napoli", "Roma", "20:45", "1.90", "3.40", "4.00"),
		goals:  matchRow("Napoli", "Roma", "20:45", "1.70", "2.05"),
		hasTab: true,
	}
	client := NewClient(b, ClientConfig{Logger: logging.FromZap(zap.New(core))})

	quotes, err := client.Quotes(context.Background())
	if err != nil {
		t.Fatalf("Quotes error: %v", err)
	}
	want := 0
	for _, quote := range quotes {
		want += quote.Prices.Offered()
	}
	if want == 0 {
		t.Fatalf("expected some offered prices")
	}

	entries := logs.FilterMessage("odds scraped").All()
	if len(entries) != 1 {
		t.Fatalf("expected one odds scraped entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["quotes"] != int64(len(quotes)) || fields["prices_offered"] != int64(want) {
		t.Fatalf("unexpected fields %v, want offered=%d", fields, want)
	}
}
