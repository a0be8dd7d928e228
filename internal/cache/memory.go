// internal/cache/memory.go
//
// A thread-safe in-memory cache with TTL, backed by hashicorp's LRU
// implementation rather than a hand-rolled container/list wrapper.

package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryEntry struct {
	value   []byte
	created time.Time
	ttl     time.Duration
}

type memoryCache struct {
	ttl time.Duration
	mu  sync.Mutex
	ll  *lru.Cache[string, memoryEntry]
}

func NewMemory(max int, ttl time.Duration) Cache {
	if max <= 0 {
		max = 128
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	c, err := lru.New[string, memoryEntry](max)
	if err != nil {
		// Only returns an error for a non-positive size, already guarded above.
		panic(err)
	}

	return &memoryCache{ttl: ttl, ll: c}
}

func (m *memoryCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ent, ok := m.ll.Get(key)
	if !ok {
		return nil, false
	}
	if expired(ent.created, ent.ttl) {
		m.ll.Remove(key)
		return nil, false
	}
	return cloneBytes(ent.value), true
}

func (m *memoryCache) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		ttl = m.ttl
	}
	m.ll.Add(key, memoryEntry{value: cloneBytes(value), created: time.Now(), ttl: ttl})
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
