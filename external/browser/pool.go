package browser

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchodds/internal/platform/logging"
)

const (
	defaultMaxPages    = 3
	defaultSettleDelay = 2 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"
)

var ErrPoolClosed = crerr.New("browser pool is closed")

type Config struct {
	MaxPages       int
	Headless       bool
	ExecPath       string
	UserAgent      string
	AcceptLanguage string
	SettleDelay    time.Duration
	Logger         *logging.Logger
}

// Pool shares one headless Chrome between scrapers and bounds how many tabs
// may be open at once. Chrome starts on first use.
type Pool struct {
	cfg    Config
	slots  *slots
	logger *logging.Logger

	launch func() (context.Context, context.CancelFunc, error)

	mu         sync.Mutex
	closed     bool
	started    bool
	browserCtx context.Context
	cancel     context.CancelFunc
}

func NewPool(cfg Config) *Pool {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.AcceptLanguage == "" {
		cfg.AcceptLanguage = "en-US,en;q=0.9"
	}
	if cfg.SettleDelay < 0 {
		cfg.SettleDelay = 0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	p := &Pool{
		cfg:    cfg,
		slots:  newSlots(cfg.MaxPages),
		logger: logger.With("component", "browser_pool"),
	}
	p.launch = p.launchChrome
	return p
}

// launchChrome starts a Chrome process and returns its browser context
// together with a cancel that tears down both the browser and the allocator.
func (p *Pool) launchChrome() (context.Context, context.CancelFunc, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", p.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.NoSandbox,
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(p.cfg.UserAgent),
	)
	if p.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(p.cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		p.logger.Debug("chrome log", "message", format, "args", args)
	}))
	cancel := func() {
		browserCancel()
		allocCancel()
	}
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		return nil, nil, crerr.Wrap(err, "start chrome")
	}
	return browserCtx, cancel, nil
}

// start launches Chrome unless it is already running. A failed launch leaves
// the pool unstarted so the next caller tries again.
func (p *Pool) start() (context.Context, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}
	if p.started {
		return p.browserCtx, nil
	}

	browserCtx, cancel, err := p.launch()
	if err != nil {
		p.logger.Warn("chrome launch failed", "error", err)
		return nil, err
	}
	p.browserCtx = browserCtx
	p.cancel = cancel
	p.started = true
	p.logger.Info("chrome started", "max_pages", p.cfg.MaxPages, "headless", p.cfg.Headless)
	return browserCtx, nil
}

// Acquire opens a tab bounded by ctx. release closes the tab and frees the
// slot; it must be called on every path and is safe to call twice.
func (p *Pool) Acquire(ctx context.Context) (context.Context, func(), error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, nil, ErrPoolClosed
	}

	if err := p.slots.acquire(ctx); err != nil {
		return nil, nil, crerr.Wrap(err, "wait for browser page")
	}
	browserCtx, err := p.start()
	if err != nil {
		p.slots.release()
		return nil, nil, err
	}

	tabCtx, tabCancel := chromedp.NewContext(browserCtx)
	p.logger.Debug("browser page acquired", "in_use", p.InUse())
	stop := context.AfterFunc(ctx, tabCancel)

	var once sync.Once
	release := func() {
		once.Do(func() {
			stop()
			tabCancel()
			p.slots.release()
		})
	}
	return tabCtx, release, nil
}

// Do runs fn against a fresh tab that has the pool's request headers set.
func (p *Pool) Do(ctx context.Context, fn func(tabCtx context.Context) error) error {
	tabCtx, release, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := chromedp.Run(tabCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": p.cfg.AcceptLanguage}),
	); err != nil {
		return crerr.Wrap(err, "prepare browser page")
	}
	return fn(tabCtx)
}

// Navigate loads url, waits for waitSelector (or body) and lets scripts settle.
func (p *Pool) Navigate(tabCtx context.Context, url, waitSelector string) error {
	if waitSelector == "" {
		waitSelector = "body"
	}
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(waitSelector, chromedp.ByQuery),
		chromedp.Sleep(p.cfg.SettleDelay),
	)
	if err != nil {
		return crerr.Wrapf(err, "navigate %s", url)
	}
	return nil
}

// Snapshot returns the current document markup.
func (p *Pool) Snapshot(tabCtx context.Context) (string, error) {
	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", crerr.Wrap(err, "read page html")
	}
	return html, nil
}

// ClickText clicks the first visible element matching selector whose text
// contains text, case-insensitively, then waits for the page to settle.
// It reports whether anything was clicked.
func (p *Pool) ClickText(tabCtx context.Context, selector, text string) (bool, error) {
	var clicked bool
	script := clickTextScript(selector, text)
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(script, &clicked)); err != nil {
		return false, crerr.Wrapf(err, "click %q", text)
	}
	if clicked {
		if err := chromedp.Run(tabCtx, chromedp.Sleep(p.cfg.SettleDelay)); err != nil {
			return true, crerr.Wrap(err, "settle after click")
		}
	}
	return clicked, nil
}

// DismissOverlays clicks through cookie banners and modal close buttons.
func (p *Pool) DismissOverlays(tabCtx context.Context, selectors ...string) {
	for _, selector := range selectors {
		var clicked bool
		if err := chromedp.Run(tabCtx, chromedp.Evaluate(clickFirstScript(selector), &clicked)); err != nil {
			p.logger.Debug("dismiss overlay failed", "selector", selector, "error", err)
			continue
		}
		if clicked {
			_ = chromedp.Run(tabCtx, chromedp.Sleep(500*time.Millisecond))
		}
	}
}

// ScrollUntilStable scrolls to the bottom until countSelector stops growing
// for three rounds or maxRounds is reached.
func (p *Pool) ScrollUntilStable(tabCtx context.Context, countSelector string, maxRounds int, pause time.Duration) (int, error) {
	previous, stableRounds := -1, 0
	var count int
	for round := 0; round < maxRounds; round++ {
		err := chromedp.Run(tabCtx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(pause),
			chromedp.Evaluate(countScript(countSelector), &count),
		)
		if err != nil {
			return count, crerr.Wrap(err, "scroll page")
		}
		if count == previous {
			stableRounds++
			if stableRounds >= 3 {
				break
			}
		} else {
			stableRounds = 0
		}
		previous = count
	}
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(`window.scrollTo(0, 0)`, nil)); err != nil {
		return count, crerr.Wrap(err, "scroll page to top")
	}
	return count, nil
}

// InUse reports how many tabs are currently checked out.
func (p *Pool) InUse() int {
	return p.slots.inUse()
}

// Close shuts Chrome down. Tabs still open are cancelled with it.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	cancel := p.cancel
	p.cancel = nil
	p.browserCtx = nil
	p.started = false
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.logger.Info("browser pool closed")
}
