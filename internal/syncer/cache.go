package syncer

import (
	"sync"

	"github.com/angelmondragon/shopfront-client/pkg/enums"
)

// ViewCache stores list/detail view payloads keyed by resource kind and a
// canonical params key. Each kind carries a generation counter; bumping it
// marks every cached view of that kind stale at once, which is how a
// mutation forces the next read of any affected view back to the backend.
type ViewCache struct {
	mu          sync.Mutex
	generations map[enums.ResourceKind]uint64
	entries     map[cacheKey]cacheEntry
}

type cacheKey struct {
	kind   enums.ResourceKind
	params string
}

type cacheEntry struct {
	generation uint64
	value      any
}

func NewViewCache() *ViewCache {
	return &ViewCache{
		generations: map[enums.ResourceKind]uint64{},
		entries:     map[cacheKey]cacheEntry{},
	}
}

// Generation returns the current generation for a kind. A fetch records
// the generation it started under and hands it back to Store. The kind is
// materialized in the counter map here so InvalidateAll always advances
// it, even before the kind's first invalidation.
func (c *ViewCache) Generation(kind enums.ResourceKind) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	generation := c.generations[kind]
	c.generations[kind] = generation
	return generation
}

// Lookup returns the cached value for (kind, params) if it is still
// current. Entries written under an older generation are misses.
func (c *ViewCache) Lookup(kind enums.ResourceKind, params string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey{kind: kind, params: params}]
	if !ok || entry.generation != c.generations[kind] {
		return nil, false
	}
	return entry.value, true
}

// Store caches a fetched value, but only if the generation the fetch
// started under is still current. A response that raced a mutation or an
// auth change is dropped so a stale payload can never overwrite the
// invalidation.
func (c *ViewCache) Store(kind enums.ResourceKind, params string, generation uint64, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generations[kind] {
		return false
	}
	c.entries[cacheKey{kind: kind, params: params}] = cacheEntry{
		generation: generation,
		value:      value,
	}
	return true
}

// Invalidate marks every cached view of the kind stale, regardless of
// params. Entries are dropped eagerly so memory does not accrete across
// generations.
func (c *ViewCache) Invalidate(kind enums.ResourceKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[kind]++
	for key := range c.entries {
		if key.kind == kind {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll discards every cached view of every kind. Called on any
// session identity change; data fetched as one principal is never served
// to another.
func (c *ViewCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for kind := range c.generations {
		c.generations[kind]++
	}
	c.entries = map[cacheKey]cacheEntry{}
}
