// Package display implements reaper's terminal status dashboard.
//
// The dashboard is a cursor-addressed console: a small, fixed set of
// named slots (current URL, current local path, last status code,
// connection state, cache occupancy, error log line) that are updated
// in place rather than scrolled. All updates are funneled through a
// single screen mutex so the crawl goroutine's status writes never
// interleave with each other on the terminal.
//
// Architecture:
//
//	theme.go     → color mode + status-code palette
//	color.go     → ANSI style helpers (with NO_COLOR / dumb-TERM fallback)
//	width.go     → terminal width detection, used to truncate long URLs
//	dashboard.go → the Display implementation itself
package display
