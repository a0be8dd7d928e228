// internal/display/dashboard.go
//
// Dashboard is reaper's terminal status collaborator. It exposes a small
// set of cursor-addressed slots that the crawl engine updates as it
// works: the URL currently being fetched, the local path it will be
// archived to, the last HTTP status, the connection state, cache
// occupancy for both frontier generations, and a one-line error log.
//
// Every call is non-blocking from the engine's perspective: each update
// acquires a single screen mutex just long enough to repaint its slot,
// and the engine never holds that mutex across a network call. This
// mirrors the single-writer-many-slots model described for the crawl
// thread / display thread split.

package display

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Dashboard is the interface the crawl engine consumes. Headless
// callers (tests, `--quiet`) use NewDiscard. A nil *Terminal is not a
// usable Dashboard: only repaint checks for a nil receiver, and the
// Update methods read the receiver's theme before calling it.
type Dashboard interface {
	UpdateCurrentURL(url string)
	UpdateCurrentLocal(path string)
	UpdateStatusCode(code int)
	UpdateOperationStatus(status string)
	UpdateConnectionState(state string)
	UpdateCacheStatus(state string)
	UpdateGenerationCount(generation int, count int)
	PutErrorMsg(msg string)
	ClearErrorMsg()
}

// slot indices into the fixed-cell layout, one screen line each.
const (
	slotURL = iota
	slotLocal
	slotStatus
	slotOperation
	slotConnection
	slotCache
	slotGen1
	slotGen2
	slotError
	slotCount
)

// Terminal is the default Dashboard backed by ANSI cursor addressing.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	theme   Theme
	painted bool
}

// NewTerminal constructs a Dashboard writing to os.Stdout with the
// given theme. Passing a zero Theme is equivalent to DefaultTheme().
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{out: os.Stdout, theme: theme}
}

// NewDiscard constructs a Dashboard whose updates are never rendered;
// useful for tests and for crawls run without a TTY.
func NewDiscard() *Terminal {
	return &Terminal{out: io.Discard, theme: MonochromeTheme()}
}

func (t *Terminal) paintOnce() {
	if t.painted {
		return
	}
	t.painted = true
	for i := 0; i < slotCount; i++ {
		fmt.Fprintln(t.out)
	}
}

// repaint moves the cursor up to `slot`'s line, clears it, writes label
// and value, then returns the cursor to the bottom of the dashboard.
func (t *Terminal) repaint(slot int, label, value string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.paintOnce()
	up := slotCount - slot
	fmt.Fprintf(t.out, "\x1b[%dA\r\x1b[2K%s %s\x1b[%dB\r", up, styleBold(t.theme, label+":"), value, up)
}

func (t *Terminal) width() int {
	return t.theme.EffectiveWidth(DefaultWidth) - 16
}

func (t *Terminal) UpdateCurrentURL(url string) {
	t.repaint(slotURL, "url", truncateToWidth(url, t.width()))
}

func (t *Terminal) UpdateCurrentLocal(path string) {
	t.repaint(slotLocal, "local", styleCode(t.theme, truncateToWidth(path, t.width())))
}

func (t *Terminal) UpdateStatusCode(code int) {
	t.repaint(slotStatus, "status", styleStatus(t.theme, fmt.Sprintf("%d", code), code))
}

func (t *Terminal) UpdateOperationStatus(status string) {
	t.repaint(slotOperation, "op", status)
}

func (t *Terminal) UpdateConnectionState(state string) {
	t.repaint(slotConnection, "conn", styleDim(t.theme, state))
}

func (t *Terminal) UpdateCacheStatus(state string) {
	t.repaint(slotCache, "cache", state)
}

func (t *Terminal) UpdateGenerationCount(generation int, count int) {
	slot := slotGen1
	if generation%2 == 1 {
		slot = slotGen2
	}
	t.repaint(slot, fmt.Sprintf("cache%d", generation), fmt.Sprintf("%d", count))
}

func (t *Terminal) PutErrorMsg(msg string) {
	t.repaint(slotError, "error", styleStatus(t.theme, msg, 500))
}

func (t *Terminal) ClearErrorMsg() {
	t.repaint(slotError, "error", "")
}
