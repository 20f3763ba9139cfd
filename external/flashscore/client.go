package flashscore

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchodds/external/browser"
	"github.com/riskibarqy/matchodds/internal/domain/fixture"
	"github.com/riskibarqy/matchodds/internal/domain/league"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBaseURL = "https://www.flashscore.com"

	listReadySelector   = ".event__match, .headerLeague__wrapper"
	detailReadySelector = ".duelParticipant"
	tabSelector         = `a, button, [class*="tabs"] *, [class*="subTabs"] *`
	standingsTabSel     = `button[data-testid="wcl-tab"]`
)

var tracer = otel.Tracer("matchodds/external/flashscore")

var overlaySelectors = []string{
	"#onetrust-accept-btn-handler",
	`button[id*="accept"]`,
	`button[class*="accept"]`,
	".onetrust-close-btn-handler",
}

// Browser is the slice of the page pool the scraper drives.
type Browser interface {
	Do(ctx context.Context, fn func(tabCtx context.Context) error) error
	Navigate(tabCtx context.Context, url, waitSelector string) error
	Snapshot(tabCtx context.Context) (string, error)
	ClickText(tabCtx context.Context, selector, text string) (bool, error)
	DismissOverlays(tabCtx context.Context, selectors ...string)
}

type ClientConfig struct {
	BaseURL  string
	Location *time.Location
	Logger   *logging.Logger
}

// Client scrapes the live-scores site through a shared browser.
type Client struct {
	browser Browser
	baseURL string
	loc     *time.Location
	logger  *logging.Logger
	now     func() time.Time
}

func NewClient(b Browser, cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		browser: b,
		baseURL: baseURL,
		loc:     loc,
		logger:  logger.With("component", "flashscore"),
		now:     time.Now,
	}
}

// ListFixtures scrapes today's match list and keeps rows whose label passes
// the allow stage for allowed. An empty allowed keeps every row.
func (c *Client) ListFixtures(ctx context.Context, allowed []string) ([]fixture.Fixture, error) {
	ctx, span := tracer.Start(ctx, "flashscore.ListFixtures")
	defer span.End()

	var keep func(string) bool
	if len(allowed) > 0 {
		keep = league.NewFilter(allowed, league.DefaultContinental, nil).Allowed
	}

	var html string
	err := c.browser.Do(ctx, func(tabCtx context.Context) error {
		if err := c.browser.Navigate(tabCtx, c.baseURL+"/", listReadySelector); err != nil {
			return err
		}
		c.browser.DismissOverlays(tabCtx, overlaySelectors...)
		var err error
		html, err = c.browser.Snapshot(tabCtx)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, crerr.Wrap(err, "render match list")
	}

	items, err := ParseList(html, keep)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		c.logger.WarnContext(ctx, "match list parsed without fixtures", "preview", browser.Preview(html, 300))
	}
	span.SetAttributes(attribute.Int("fixtures.count", len(items)))
	return items, nil
}

// FixtureDetail scrapes the match page and its Standings, H2H and per-side
// form tabs. Tabs that are missing leave their section empty.
func (c *Client) FixtureDetail(ctx context.Context, fixtureID string) (fixture.Detail, error) {
	ctx, span := tracer.Start(ctx, "flashscore.FixtureDetail")
	defer span.End()
	span.SetAttributes(attribute.String("fixture.id", fixtureID))

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Detail{}, fixture.ErrNotFound
	}

	var detail fixture.Detail
	err := c.browser.Do(ctx, func(tabCtx context.Context) error {
		if err := c.browser.Navigate(tabCtx, c.baseURL+"/match/"+fixtureID+"/", detailReadySelector); err != nil {
			return err
		}
		c.browser.DismissOverlays(tabCtx, overlaySelectors...)

		html, err := c.browser.Snapshot(tabCtx)
		if err != nil {
			return err
		}
		detail, err = ParseSummary(html)
		if err != nil {
			if crerr.Is(err, fixture.ErrNotFound) {
				c.logger.InfoContext(ctx, "match page has no participants", "fixture_id", fixtureID, "preview", browser.Preview(html, 300))
			}
			return err
		}

		detail.Standings = c.scrapeStandings(ctx, tabCtx, detail.HomeTeam.Name, detail.AwayTeam.Name)
		detail.H2H, detail.HomeForm, detail.AwayForm = c.scrapeH2H(ctx, tabCtx, detail.HomeTeam.Name, detail.AwayTeam.Name)
		return nil
	})
	if err != nil {
		if crerr.Is(err, fixture.ErrNotFound) {
			return fixture.Detail{}, err
		}
		span.RecordError(err)
		return fixture.Detail{}, crerr.Wrapf(err, "scrape fixture %s", fixtureID)
	}

	detail.ID = fixtureID
	detail.Date = c.now().In(c.loc).Format("2006-01-02")
	return detail, nil
}

func (c *Client) scrapeStandings(ctx, tabCtx context.Context, home, away string) fixture.Standings {
	clicked, err := c.browser.ClickText(tabCtx, standingsTabSel, "Standings")
	if err != nil || !clicked {
		return fixture.Standings{}
	}
	html, err := c.browser.Snapshot(tabCtx)
	if err != nil {
		c.logger.DebugContext(ctx, "standings snapshot failed", "error", err)
		return fixture.Standings{}
	}
	standings, err := ParseStandings(html, home, away)
	if err != nil {
		return fixture.Standings{}
	}
	return standings
}

func (c *Client) scrapeH2H(ctx, tabCtx context.Context, home, away string) ([]fixture.H2HEntry, []fixture.FormEntry, []fixture.FormEntry) {
	clicked, err := c.browser.ClickText(tabCtx, tabSelector, "H2H")
	if err != nil || !clicked {
		return nil, nil, nil
	}

	var (
		h2h      []fixture.H2HEntry
		homeForm []fixture.FormEntry
		awayForm []fixture.FormEntry
	)
	if html, err := c.browser.Snapshot(tabCtx); err == nil {
		h2h, _ = ParseH2H(html, home, away)
	}
	homeForm = c.scrapeForm(ctx, tabCtx, home, "HOME", true)
	awayForm = c.scrapeForm(ctx, tabCtx, away, "AWAY", false)
	return h2h, homeForm, awayForm
}

// scrapeForm opens the "<TEAM> - HOME|AWAY" sub-tab, trying the upper-cased
// team name first and the name as shown second.
func (c *Client) scrapeForm(ctx, tabCtx context.Context, team, side string, isHome bool) []fixture.FormEntry {
	tab := strings.ToUpper(team) + " - " + side
	clicked, err := c.browser.ClickText(tabCtx, tabSelector, tab)
	if err == nil && !clicked {
		tab = team + " - " + side
		clicked, err = c.browser.ClickText(tabCtx, tabSelector, tab)
	}
	if err != nil || !clicked {
		return nil
	}
	html, err := c.browser.Snapshot(tabCtx)
	if err != nil {
		c.logger.DebugContext(ctx, "form snapshot failed", "tab", tab, "error", err)
		return nil
	}
	form, err := ParseForm(html, isHome)
	if err != nil {
		return nil
	}
	return form
}
