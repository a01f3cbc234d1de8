// Package cache provides memoization for L-system expansions.
// Expansion is deterministic, so a redraw with unchanged axiom, rules
// and iteration count never needs to rebuild the string; caching keeps
// interactive parameter tweaking cheap even at high iteration counts.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/verdantlab/go-lsys/lsystem"
)

// ExpansionCache caches expanded strings keyed by a hash of the inputs.
type ExpansionCache struct {
	mu        sync.RWMutex
	cache     map[string]string
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewExpansionCache creates a cache with the specified maximum entry
// count. When the cache is full an arbitrary entry is evicted. Set
// maxSize to 0 for an unbounded cache.
func NewExpansionCache(maxSize int) *ExpansionCache {
	return &ExpansionCache{
		cache:   make(map[string]string),
		maxSize: maxSize,
	}
}

// hashKey builds a deterministic key for an expansion request.
// RuleSet.String is canonical (sorted by symbol), so rule insertion
// order never splits the cache.
func hashKey(axiom string, rules lsystem.RuleSet, iterations int) string {
	h := sha256.New()
	h.Write([]byte(axiom))
	h.Write([]byte{0})
	h.Write([]byte(rules.String()))
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(iterations))
	h.Write(buf)
	return string(h.Sum(nil))
}

// Get retrieves a cached expansion. The second result reports whether
// the entry was present. Takes the write lock because the hit and miss
// counters mutate on every lookup.
func (c *ExpansionCache) Get(axiom string, rules lsystem.RuleSet, iterations int) (string, bool) {
	key := hashKey(axiom, rules, iterations)

	c.mu.Lock()
	defer c.mu.Unlock()

	if expanded, ok := c.cache[key]; ok {
		c.hits++
		return expanded, true
	}
	c.misses++
	return "", false
}

// Put stores an expansion in the cache.
func (c *ExpansionCache) Put(axiom string, rules lsystem.RuleSet, iterations int, expanded string) {
	key := hashKey(axiom, rules, iterations)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}

	c.cache[key] = expanded
}

// GetOrExpand retrieves from the cache or runs the expansion and caches
// the result.
func (c *ExpansionCache) GetOrExpand(axiom string, rules lsystem.RuleSet, iterations int) (string, error) {
	if expanded, ok := c.Get(axiom, rules, iterations); ok {
		return expanded, nil
	}
	expanded, err := lsystem.Expand(axiom, rules, iterations)
	if err != nil {
		return "", err
	}
	c.Put(axiom, rules, iterations, expanded)
	return expanded, nil
}

// Size returns the number of cached expansions.
func (c *ExpansionCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns hit, miss and eviction counts.
func (c *ExpansionCache) Stats() (hits, misses, evictions int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses, c.evictions
}

// Clear removes all entries and resets statistics.
func (c *ExpansionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]string)
	c.hits, c.misses, c.evictions = 0, 0, 0
}
