// internal/config/defaults.go
//
// Centralizes default configuration constants so the baseline behavior
// of a crawl run can be reviewed and adjusted in one place.
package config

import "time"

const (
	// defaultDepth is the number of BFS generations run when the
	// caller does not specify --depth.
	defaultDepth = 3

	// defaultDelay is the pause between requests within a generation.
	defaultDelay = 1 * time.Second

	// defaultUserAgent identifies the crawler to remote servers.
	defaultUserAgent = "reaper/0.1 (+https://github.com/ossreap/reaper)"

	// defaultNrLinksThreshold bounds how many link records a filling
	// frontier accepts before a generation stops extracting links.
	defaultNrLinksThreshold = 100000
)
