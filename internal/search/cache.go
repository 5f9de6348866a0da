package search

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/docsearch/go-docs-search/services"
)

// resultCache memoizes the full sorted, unpaginated result list for a
// query signature. Entries expire after a fixed TTL (evicted lazily on
// read) and the cache is bounded: inserting past capacity evicts the
// least recently used entry. A hit reinserts the key at the tail of the
// order slice, so insertion order doubles as recency order.
//
// The cache belongs to one corpus snapshot; a corpus reload swaps in a
// fresh snapshot with a fresh cache, so no entry can outlive the
// document IDs it references.
type resultCache struct {
	mu       sync.Mutex
	entries  map[uint64]*cacheEntry
	order    []uint64
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

type cacheEntry struct {
	hits    []services.Hit
	created time.Time
}

func newResultCache(capacity int, ttl time.Duration) *resultCache {
	return &resultCache{
		entries:  make(map[uint64]*cacheEntry, capacity),
		order:    make([]uint64, 0, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// get returns the cached result list for key, if present and live.
// Cached slices are shared and must be treated as immutable by callers.
func (c *resultCache) get(key uint64) ([]services.Hit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.created) >= c.ttl {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return nil, false
	}

	// Move to most-recently-used position.
	c.removeFromOrder(key)
	c.order = append(c.order, key)
	return entry.hits, true
}

// put inserts or overwrites the entry for key, then evicts the least
// recently used entry if the cache exceeds its capacity.
func (c *resultCache) put(key uint64, hits []services.Hit) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.removeFromOrder(key)
	}
	c.entries[key] = &cacheEntry{hits: hits, created: c.now()}
	c.order = append(c.order, key)

	if len(c.entries) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

func (c *resultCache) removeFromOrder(key uint64) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// querySignature deterministically encodes every input that affects the
// unpaginated result list: the lowercased group structure, the
// title-only flag, the sorted base-index restriction, and the category
// filter. Anything omitted here would risk serving stale results for a
// differently scoped request.
func querySignature(groups []Group, titleOnly bool, base []int, category string) uint64 {
	digest := xxhash.New()
	for _, group := range groups {
		for _, alt := range group.Lowered {
			digest.WriteString(alt)
			digest.WriteString("\x1f") // alternative separator
		}
		digest.WriteString("\x1e") // group separator
	}
	if titleOnly {
		digest.WriteString("t")
	}
	digest.WriteString("\x1e")
	if base != nil {
		sorted := make([]int, len(base))
		copy(sorted, base)
		sort.Ints(sorted)
		for _, id := range sorted {
			digest.WriteString(strconv.Itoa(id))
			digest.WriteString("\x1f")
		}
	}
	digest.WriteString("\x1e")
	digest.WriteString(category)
	return digest.Sum64()
}
