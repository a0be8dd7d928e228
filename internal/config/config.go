// internal/config/config.go
//
// Package config defines reaper's crawl configuration: the seed, depth,
// delay, and enumerated option flags the core consults through the
// Options collaborator.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Flag is one member of the enumerated option set the crawl engine
// consults via Options.Set. New flags are added here, never as bare
// booleans scattered across Config, so that Options stays the single
// source of truth for the crawl's on/off switches.
type Flag int

const (
	// UseTLS opens the initial connection over TLS. An opportunistic
	// https:// redirect upgrades the connection without changing it.
	UseTLS Flag = iota
	// AllowXDomain permits the frontier to accept cross-host URLs.
	AllowXDomain
	// DebugLogging raises the logger to debug verbosity.
	DebugLogging
)

// Options is the enumerated flag set the core consults. Config
// implements it directly; callers that only need read access should
// depend on this interface rather than *Config.
type Options interface {
	Set(flag Flag) bool
}

// Config holds the full configuration surface for one crawl run.
type Config struct {
	// SeedURL records the crawl's first URL. Engine.Run takes the seed
	// as its argument and does not read this field; the primary host
	// (the reconnect target after a bad redirect) is derived from that
	// argument.
	SeedURL string

	// Depth is the number of BFS generations to run before stopping.
	Depth int

	// Delay is the pause between requests within a generation.
	Delay time.Duration

	// ArchiveRoot is the directory mirrored pages are written under.
	// Defaults to $HOME/WR_Reaped/.
	ArchiveRoot string

	// UserAgent is sent on every request.
	UserAgent string

	// RequestTimeout bounds DNS resolution and connect for each dial.
	// Reads and writes carry no deadline. Zero means no timeout; a
	// positive value opts into one.
	RequestTimeout time.Duration

	// NrLinksThreshold caps how many link records the filling
	// frontier will accept before link extraction is skipped for
	// the remainder of the generation.
	NrLinksThreshold int

	flags map[Flag]bool
}

// Set reports whether flag is enabled.
func (c *Config) Set(flag Flag) bool {
	return c.flags[flag]
}

// SetFlag enables or disables flag.
func (c *Config) SetFlag(flag Flag, on bool) {
	if c.flags == nil {
		c.flags = make(map[Flag]bool)
	}
	c.flags[flag] = on
}

// Default constructs a Config with reaper's baseline defaults.
func Default() *Config {
	return &Config{
		Depth:            defaultDepth,
		Delay:            defaultDelay,
		ArchiveRoot:      defaultArchiveRoot(),
		UserAgent:        defaultUserAgent,
		RequestTimeout:   0,
		NrLinksThreshold: defaultNrLinksThreshold,
		flags:            make(map[Flag]bool),
	}
}

// defaultArchiveRoot resolves $HOME/WR_Reaped, falling back to a
// relative directory if the home directory cannot be determined.
func defaultArchiveRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "WR_Reaped"
	}
	return filepath.Join(home, "WR_Reaped")
}
