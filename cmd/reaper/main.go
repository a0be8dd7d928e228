// cmd/reaper/main.go
//
// reaper <seed-url> [--depth N] [--delay S] [--xdomain] [--tls] [--output DIR]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ossreap/reaper/internal/cache"
	"github.com/ossreap/reaper/internal/config"
	"github.com/ossreap/reaper/internal/display"
	"github.com/ossreap/reaper/internal/log"
	"github.com/ossreap/reaper/internal/reaper"
	"github.com/ossreap/reaper/internal/robots"
	"github.com/ossreap/reaper/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		depth            int
		delay            float64
		xdomain          bool
		useTLS           bool
		output           string
		quiet            bool
		skipRobots       bool
		debug            bool
		robotsCacheRedis string
	)

	cmd := &cobra.Command{
		Use:     "reaper <seed-url>",
		Short:   "Recursively archive a website to a local mirror directory",
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.Depth = depth
			cfg.Delay = time.Duration(delay * float64(time.Second))
			if output != "" {
				cfg.ArchiveRoot = output
			}
			cfg.SetFlag(config.AllowXDomain, xdomain)
			cfg.SetFlag(config.UseTLS, useTLS)
			cfg.SetFlag(config.DebugLogging, debug)

			logger := log.New(debug)

			var dashboard display.Dashboard
			if quiet {
				dashboard = display.NewDiscard()
			} else {
				dashboard = display.NewTerminal(display.DefaultTheme())
			}

			var policy *robots.Policy
			if !skipRobots {
				robotsCache := cache.NewComposite(cache.Config{
					MemoryEnabled: true,
					MemoryTTL:     time.Hour,
					MemoryMax:     64,
					RedisEnabled:  robotsCacheRedis != "",
					RedisTTL:      time.Hour,
					RedisAddress:  robotsCacheRedis,
					Logger:        logger,
				})
				policy = robots.NewPolicy(robots.NewHTTPFetcher(cfg.UserAgent), robotsCache, cfg.UserAgent, logger)
			}

			engine := reaper.New(cfg, logger, dashboard, policy)
			if err := engine.Run(args[0]); err != nil {
				return fmt.Errorf("reaper: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 3, "number of BFS generations to crawl")
	cmd.Flags().Float64Var(&delay, "delay", 1, "seconds to sleep between requests")
	cmd.Flags().BoolVar(&xdomain, "xdomain", false, "allow crawling links that leave the seed's host")
	cmd.Flags().BoolVar(&useTLS, "tls", false, "open the initial connection over TLS")
	cmd.Flags().StringVar(&output, "output", "", "archive root directory (default $HOME/WR_Reaped)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "disable the terminal status dashboard")
	cmd.Flags().BoolVar(&skipRobots, "skip-robots", false, "do not consult robots.txt before fetching")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&robotsCacheRedis, "robots-cache-redis", "", "address of a Redis instance to share the robots.txt cache across runs (host:port)")

	return cmd
}
