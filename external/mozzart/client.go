package mozzart

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchodds/external/browser"
	"github.com/riskibarqy/matchodds/internal/domain/odds"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultURL = "https://www.mozzartbet.com/sr/kladjenje/sport/1?date=today"

	goalsTabSelector = "span.grouped-game"
	goalsTabLabel    = "Oba tima daju gol"

	defaultScrollRounds = 20
	defaultScrollPause  = 800 * time.Millisecond
)

var tracer = otel.Tracer("matchodds/external/mozzart")

var overlaySelectors = []string{
	`button[class*="close"]`,
	`button[aria-label*="Close"]`,
	`button[aria-label*="Zatvori"]`,
	".modal-close",
	".popup-close",
	`[data-dismiss="modal"]`,
	".btn-close",
	"button.close",
	`button[id*="accept"]`,
	`button[class*="accept"]`,
	"#onetrust-accept-btn-handler",
	".cookie-accept",
}

type Browser interface {
	Do(ctx context.Context, fn func(tabCtx context.Context) error) error
	Navigate(tabCtx context.Context, url, waitSelector string) error
	Snapshot(tabCtx context.Context) (string, error)
	ClickText(tabCtx context.Context, selector, text string) (bool, error)
	DismissOverlays(tabCtx context.Context, selectors ...string)
	ScrollUntilStable(tabCtx context.Context, countSelector string, maxRounds int, pause time.Duration) (int, error)
}

type ClientConfig struct {
	URL          string
	ScrollRounds int
	ScrollPause  time.Duration
	Logger       *logging.Logger
}

// Client scrapes today's football offer from the bookmaker.
type Client struct {
	browser      Browser
	url          string
	scrollRounds int
	scrollPause  time.Duration
	logger       *logging.Logger
}

func NewClient(b Browser, cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}
	if cfg.ScrollRounds <= 0 {
		cfg.ScrollRounds = defaultScrollRounds
	}
	if cfg.ScrollPause <= 0 {
		cfg.ScrollPause = defaultScrollPause
	}
	return &Client{
		browser:      b,
		url:          url,
		scrollRounds: cfg.ScrollRounds,
		scrollPause:  cfg.ScrollPause,
		logger:       logger.With("component", "mozzart"),
	}
}

// Quotes returns every match on the main view with its goal markets merged
// in. A missing or broken goals view leaves those markets NotOffered.
func (c *Client) Quotes(ctx context.Context) ([]odds.Quote, error) {
	ctx, span := tracer.Start(ctx, "mozzart.Quotes")
	defer span.End()

	var quotes []odds.Quote
	err := c.browser.Do(ctx, func(tabCtx context.Context) error {
		if err := c.browser.Navigate(tabCtx, c.url, "body"); err != nil {
			return err
		}
		c.browser.DismissOverlays(tabCtx, overlaySelectors...)

		html, err := c.browser.Snapshot(tabCtx)
		if err != nil {
			return err
		}
		quotes, err = ParseMain(html)
		if err != nil {
			return err
		}
		if len(quotes) == 0 {
			c.logger.WarnContext(ctx, "odds page parsed without matches", "preview", browser.Preview(html, 300))
			return nil
		}

		goals, err := c.scrapeGoals(ctx, tabCtx)
		if err != nil {
			c.logger.WarnContext(ctx, "goal markets unavailable", "error", err)
			return nil
		}
		quotes = MergeGoals(quotes, goals)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, crerr.Wrap(err, "scrape odds")
	}

	offered := 0
	for _, quote := range quotes {
		offered += quote.Prices.Offered()
	}
	c.logger.DebugContext(ctx, "odds scraped", "quotes", len(quotes), "prices_offered", offered)
	span.SetAttributes(
		attribute.Int("quotes.count", len(quotes)),
		attribute.Int("quotes.prices_offered", offered),
	)
	return quotes, nil
}

func (c *Client) scrapeGoals(ctx, tabCtx context.Context) (map[string]odds.Prices, error) {
	clicked, err := c.browser.ClickText(tabCtx, goalsTabSelector, goalsTabLabel)
	if err != nil {
		return nil, err
	}
	if !clicked {
		c.logger.InfoContext(ctx, "goals tab not found")
		return map[string]odds.Prices{}, nil
	}

	loaded, err := c.browser.ScrollUntilStable(tabCtx, matchSelector, c.scrollRounds, c.scrollPause)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "goals view loaded", "matches", loaded)

	html, err := c.browser.Snapshot(tabCtx)
	if err != nil {
		return nil, err
	}
	return ParseGoals(html)
}
