// internal/reaper/engine.go
//
// Package reaper drives the outer breadth-first crawl loop: pulling
// one link record at a time from the draining frontier, fetching it,
// extracting and rewriting its links, and archiving the result, until
// the configured depth is reached.
package reaper

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/ossreap/reaper/internal/config"
	"github.com/ossreap/reaper/internal/display"
	rerrors "github.com/ossreap/reaper/internal/errors"
	"github.com/ossreap/reaper/internal/frontier"
	"github.com/ossreap/reaper/internal/httpwire"
	"github.com/ossreap/reaper/internal/linkrewrite"
	"github.com/ossreap/reaper/internal/log"
	"github.com/ossreap/reaper/internal/netconn"
	"github.com/ossreap/reaper/internal/pagemeta"
	"github.com/ossreap/reaper/internal/robots"
	"github.com/ossreap/reaper/internal/urlutil"
)

// archivableTerminalStatuses mirrors the 404/410-still-archived rule from the
// error-handling design: these statuses are terminal for the URL, but
// the page is written anyway so a later generation never re-requests it.
var archivableTerminalStatuses = map[int]bool{404: true, 410: true}

// Engine holds the crawl's full mutable state: the current depth, the
// two-generation frontier pair, the single connection the crawl thread
// owns, and a reaped-page counter.
type Engine struct {
	cfg       *config.Config
	log       log.Logger
	dashboard display.Dashboard
	policy    *robots.Policy // nil disables robots.txt checking

	pair *frontier.Pair

	conn         *netconn.Connection
	primaryHost  string
	currentDepth int
	nrReaped     int

	interrupted atomic.Bool
}

// New constructs an Engine. dashboard and policy may both be nil: a
// nil dashboard discards status updates, a nil policy skips robots.txt
// checks entirely.
func New(cfg *config.Config, logger log.Logger, dashboard display.Dashboard, policy *robots.Policy) *Engine {
	if dashboard == nil {
		dashboard = display.NewDiscard()
	}
	return &Engine{
		cfg:       cfg,
		log:       logger,
		dashboard: dashboard,
		policy:    policy,
		pair:      frontier.NewPair(64),
	}
}

// Run crawls starting from seedURL until the configured depth is
// exhausted or the process receives SIGINT between URLs.
func (e *Engine) Run(seedURL string) error {
	e.primaryHost = urlutil.ParseHost(seedURL)
	secure := e.cfg.Set(config.UseTLS)

	conn, err := netconn.Open(e.primaryHost, secure, e.cfg.RequestTimeout)
	if err != nil {
		return rerrors.New(rerrors.KindFatal, "opening seed connection", err)
	}
	e.conn = conn
	defer e.conn.Close()

	e.pair.Filling().Insert(seedURL)
	e.pair.SwapGenerations() // the seed starts out FILLING; swap puts it on the draining side

	for e.currentDepth = 0; e.currentDepth < e.cfg.Depth; e.currentDepth++ {
		if e.interrupted.Load() {
			break
		}
		if err := e.runGeneration(); err != nil {
			return err
		}
	}
	return nil
}

// runGeneration drains the current generation's frontier, feeding
// accepted links into the other side, then swaps and tears the drained
// side down.
func (e *Engine) runGeneration() error {
	source := e.pair.Draining()
	filling := e.pair.Filling()

	var urls []string
	source.Walk(func(url string) { urls = append(urls, url) })

	e.dashboard.UpdateGenerationCount(e.currentDepth, len(urls))

	for _, url := range urls {
		if url == "" {
			continue // empty-URL records are never inserted, but guard defensively
		}
		if e.interrupted.Load() {
			break
		}

		e.sleepBetweenRequests()
		if e.interrupted.Load() {
			break
		}

		fatal, err := e.visit(url, filling)
		if err != nil {
			e.dashboard.PutErrorMsg(err.Error())
			e.log.Warnf("visit %s: %v", url, err)
		} else {
			e.dashboard.ClearErrorMsg()
		}
		if fatal {
			return err
		}
	}

	source.Teardown()
	e.pair.SwapGenerations()
	return nil
}

// sleepBetweenRequests pauses for the configured delay with SIGINT
// deferred: a Ctrl-C during the sleep is captured but not acted on
// until the sleep completes, so cancellation never lands mid-write.
func (e *Engine) sleepBetweenRequests() {
	if e.cfg.Delay <= 0 {
		return
	}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	defer signal.Stop(sigCh)

	timer := time.NewTimer(e.cfg.Delay)
	<-timer.C

	select {
	case <-sigCh:
		e.interrupted.Store(true)
	default:
	}
}

// visit fetches one URL, dispatches on its status per the error
// taxonomy, and archives it when appropriate. The returned bool
// reports whether the crawl must abort outright.
func (e *Engine) visit(url string, filling *frontier.Frontier) (fatal bool, err error) {
	e.dashboard.UpdateCurrentURL(url)

	ctx := urlutil.HTTPContext{
		Scheme: schemeOf(e.conn),
		Host:   urlutil.ParseHost(url),
		Page:   urlutil.ParsePage(url),
	}
	e.dashboard.UpdateCurrentLocal(urlutil.MakeLocalURL(e.cfg.ArchiveRoot, url))

	if e.policy != nil && !e.policy.Allowed(ctx.Scheme, ctx.Host, ctx.Page) {
		return false, nil // policy-skip: silent
	}

	if err := e.ensureConnection(ctx); err != nil {
		return false, rerrors.New(rerrors.KindNetworkTransient, "reconnect failed, skipping URL", err)
	}

	alreadyExists := urlutil.LocalArchiveExists(e.cfg.ArchiveRoot, url)
	resp, reqErr := httpwire.DoRequest(e.conn, ctx.Page, ctx.Host, e.cfg.UserAgent, alreadyExists)
	if reqErr != nil {
		e.conn.Reconnect()
		return false, rerrors.New(rerrors.KindProtocolParse, "request failed, reconnecting", reqErr)
	}

	e.dashboard.UpdateStatusCode(max(resp.StatusCode, 0))

	if upgraded := e.maybeUpgradeFromRedirect(resp, ctx); upgraded {
		// Retry once on the freshly upgraded connection.
		resp, reqErr = httpwire.DoRequest(e.conn, ctx.Page, ctx.Host, e.cfg.UserAgent, alreadyExists)
		if reqErr != nil {
			e.conn.Reconnect()
			return false, rerrors.New(rerrors.KindProtocolParse, "retry after TLS upgrade failed", reqErr)
		}
	}

	return e.dispatch(resp, url, ctx, filling)
}

func (e *Engine) dispatch(resp *httpwire.Response, url string, ctx urlutil.HTTPContext, filling *frontier.Frontier) (fatal bool, err error) {
	switch {
	case resp.StatusCode == 200, archivableTerminalStatuses[resp.StatusCode]:
		e.archive(resp, url, ctx, filling)
		return false, nil

	case resp.StatusCode == httpwire.StatusAlreadyExists,
		resp.StatusCode == httpwire.StatusXDomain,
		resp.StatusCode == httpwire.StatusSkipLink:
		return false, nil // policy-skip

	case resp.StatusCode == 400,
		resp.StatusCode == 401, resp.StatusCode == 403, resp.StatusCode == 405,
		resp.StatusCode >= 500:
		e.conn.Reconnect()
		return false, rerrors.New(rerrors.KindNetworkTransient, fmt.Sprintf("status %d", resp.StatusCode), nil)

	default:
		return true, rerrors.New(rerrors.KindFatal, fmt.Sprintf("unhandled status %d for %s", resp.StatusCode, url), nil)
	}
}

// archive runs link extraction (if the URL is parseable and the
// filling frontier has room), rewrites the body in place, and writes
// the result under the archive root.
func (e *Engine) archive(resp *httpwire.Response, url string, ctx urlutil.HTTPContext, filling *frontier.Frontier) {
	if urlutil.IsParseable(url) && filling.Len() < e.cfg.NrLinksThreshold {
		linkrewrite.Extract(resp.Raw, ctx, e.pair.Draining(), filling, e.cfg.ArchiveRoot, e.cfg.Set(config.AllowXDomain))
	}
	if title := pagemeta.ExtractTitle(resp.Body()); title != "" {
		e.dashboard.UpdateOperationStatus(title)
	}

	linkrewrite.Rewrite(resp.Raw, ctx, e.cfg.ArchiveRoot)

	local := urlutil.MakeLocalURL(e.cfg.ArchiveRoot, url)
	if err := writeArchive(local, resp.Body()); err != nil {
		e.log.Errorf("writing %s: %v", local, err)
		return
	}
	e.nrReaped++
}

func writeArchive(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, body, 0o600)
}

// ensureConnection opens or reopens e.conn if the target host differs
// from the connection's current one.
func (e *Engine) ensureConnection(ctx urlutil.HTTPContext) error {
	if e.conn.Host() == ctx.Host {
		return nil
	}
	e.conn.SetHost(ctx.Host)
	return e.conn.Reconnect()
}

// maybeUpgradeFromRedirect inspects a 3xx response's Location header
// and upgrades the connection to TLS when it points at an https://
// target, per the opportunistic-TLS-on-redirect rule.
func (e *Engine) maybeUpgradeFromRedirect(resp *httpwire.Response, ctx urlutil.HTTPContext) bool {
	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return false
	}
	_, loc, ok := httpwire.FindHeader(resp.Header(), "Location", 0)
	if !ok {
		return false
	}
	if !e.conn.Secure() && len(loc) >= 8 && loc[:8] == "https://" {
		e.dashboard.UpdateConnectionState("upgrading to tls")
		if err := e.conn.UpgradeToTLS(); err != nil {
			e.log.Warnf("tls upgrade failed: %v", err)
			return false
		}
		return true
	}
	return false
}

func schemeOf(c *netconn.Connection) string {
	if c.Secure() {
		return "https"
	}
	return "http"
}
