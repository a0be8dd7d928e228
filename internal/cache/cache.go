// internal/cache/cache.go
//
// Package cache backs reaper's robots.txt fetch cache: the policy
// evaluator consults it before issuing a GET for <host>/robots.txt, so
// a crawl that visits many pages on one host (or, under ALLOW_XDOMAIN,
// many hosts) does not re-fetch a robots.txt while its entry is cached.
// Backends
// compose in priority order: memory, then an optional file layer, then
// an optional Redis layer.
package cache

import (
	"time"

	"github.com/ossreap/reaper/internal/log"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

type Config struct {
	MemoryEnabled bool
	MemoryTTL     time.Duration
	MemoryMax     int

	FileEnabled   bool
	FileTTL       time.Duration
	FileDirectory string

	RedisEnabled bool
	RedisTTL     time.Duration
	RedisAddress string

	Logger log.Logger
}

// compositeCache checks multiple caches in priority order:
// Memory → File → Redis → Miss.
type compositeCache struct {
	memory Cache
	file   Cache
	redis  Cache
	log    log.Logger
}

func NewComposite(cfg Config) Cache {
	var mem Cache
	if cfg.MemoryEnabled {
		mem = NewMemory(cfg.MemoryMax, cfg.MemoryTTL)
	}
	var file Cache
	if cfg.FileEnabled {
		file = NewFile(cfg.FileDirectory, cfg.FileTTL)
	}
	var redis Cache
	if cfg.RedisEnabled {
		redis = NewRedis(cfg.RedisAddress, cfg.RedisTTL)
	}

	return &compositeCache{
		memory: mem,
		file:   file,
		redis:  redis,
		log:    cfg.Logger,
	}
}

func (c *compositeCache) Get(key string) ([]byte, bool) {
	if c.memory != nil {
		if v, ok := c.memory.Get(key); ok {
			c.logf("cache: memory hit %s", key)
			return v, true
		}
	}
	if c.file != nil {
		if v, ok := c.file.Get(key); ok {
			c.logf("cache: file hit %s", key)
			if c.memory != nil {
				c.memory.Set(key, v, time.Hour)
			}
			return v, true
		}
	}
	if c.redis != nil {
		if v, ok := c.redis.Get(key); ok {
			c.logf("cache: redis hit %s", key)
			if c.memory != nil {
				c.memory.Set(key, v, time.Hour)
			}
			return v, true
		}
	}
	return nil, false
}

func (c *compositeCache) Set(key string, value []byte, ttl time.Duration) {
	if c.memory != nil {
		c.memory.Set(key, value, ttl)
	}
	if c.file != nil {
		c.file.Set(key, value, ttl)
	}
	if c.redis != nil {
		c.redis.Set(key, value, ttl)
	}
}

func (c *compositeCache) logf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}
