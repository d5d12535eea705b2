// Package cache provides a bounded, time-aware memoization cache with LRU
// eviction and an optional periodic sweep of expired entries.
package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Cache is a capacity- and age-bounded key/value store.
// Entries older than the TTL are dropped on access and by the sweeper;
// when the capacity is exceeded, the least recently used entries are
// evicted. The zero value is not usable, use New.
type Cache[K comparable, V any] struct {
	mu       sync.RWMutex
	entries  map[K]*entry[V]
	capacity int
	ttl      time.Duration

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
	expired   atomic.Uint64

	sweeping bool
	closeCh  chan struct{}
	sweepWg  sync.WaitGroup
}

type entry[V any] struct {
	value      V
	storedAt   time.Time // For TTL expiry
	lastAccess time.Time // For LRU eviction
}

// New creates a cache holding at most capacity entries.
// capacity <= 0 means unbounded (not recommended); ttl <= 0 disables
// age-based expiry.
func New[K comparable, V any](capacity int, ttl time.Duration) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[V]),
		capacity: capacity,
		ttl:      ttl,
	}
}

// Get retrieves a value if present and not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	now := time.Now()

	c.mu.RLock()
	e, ok := c.entries[key]
	if ok && !c.isExpired(e, now) {
		c.mu.RUnlock()
		// Update access time with write lock and re-verify entry
		c.mu.Lock()
		if e, ok := c.entries[key]; ok && !c.isExpired(e, now) {
			e.lastAccess = now
			value := e.value
			c.mu.Unlock()
			c.hits.Add(1)
			return value, true
		}
		c.mu.Unlock()
	} else {
		c.mu.RUnlock()
	}

	if ok {
		// Entry existed but was expired; drop it eagerly.
		c.mu.Lock()
		if e, still := c.entries[key]; still && c.isExpired(e, now) {
			delete(c.entries, key)
			c.expired.Add(1)
		}
		c.mu.Unlock()
	}

	c.misses.Add(1)
	var zero V
	return zero, false
}

// Put stores a value, evicting the least recently used entries if the
// capacity is exceeded.
func (c *Cache[K, V]) Put(key K, value V) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry[V]{
		value:      value,
		storedAt:   now,
		lastAccess: now,
	}

	if c.capacity > 0 && len(c.entries) > c.capacity {
		c.evict()
	}
}

// Delete removes a single entry.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[V])
}

// Len returns the number of cached entries, including any not yet swept.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes all expired entries and returns how many were dropped.
func (c *Cache[K, V]) Sweep() int {
	if c.ttl <= 0 {
		return 0
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if c.isExpired(e, now) {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		c.expired.Add(uint64(removed))
	}
	return removed
}

// isExpired reports whether an entry has outlived the TTL.
func (c *Cache[K, V]) isExpired(e *entry[V], now time.Time) bool {
	return c.ttl > 0 && now.Sub(e.storedAt) > c.ttl
}

// evict removes the least recently used entries until under capacity.
// Must be called with write lock held.
func (c *Cache[K, V]) evict() {
	if c.capacity <= 0 || len(c.entries) <= c.capacity {
		return
	}

	type keyTime struct {
		key  K
		time time.Time
	}

	byAge := make([]keyTime, 0, len(c.entries))
	for key, e := range c.entries {
		byAge = append(byAge, keyTime{key, e.lastAccess})
	}

	// Simple sort by time (insertion sort is fine for small N)
	for i := 1; i < len(byAge); i++ {
		j := i
		for j > 0 && byAge[j].time.Before(byAge[j-1].time) {
			byAge[j], byAge[j-1] = byAge[j-1], byAge[j]
			j--
		}
	}

	toRemove := len(byAge) - c.capacity
	if toRemove > 0 {
		for i := 0; i < toRemove; i++ {
			delete(c.entries, byAge[i].key)
		}
		c.evictions.Add(uint64(toRemove))
	}
}

// StartSweeper launches a background goroutine that sweeps expired entries
// every interval. It is a no-op if a sweeper is already running, the
// interval is non-positive, or the cache has no TTL.
func (c *Cache[K, V]) StartSweeper(interval time.Duration) {
	if interval <= 0 || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	if c.sweeping {
		c.mu.Unlock()
		return
	}
	c.sweeping = true
	c.closeCh = make(chan struct{})
	c.mu.Unlock()

	c.sweepWg.Add(1)
	go c.sweepLoop(interval)
}

// StopSweeper stops the background sweeper and waits for it to exit.
// Safe to call when no sweeper is running.
func (c *Cache[K, V]) StopSweeper() {
	c.mu.Lock()
	if !c.sweeping {
		c.mu.Unlock()
		return
	}
	c.sweeping = false
	close(c.closeCh)
	c.mu.Unlock()

	c.sweepWg.Wait()
}

// sweepLoop runs periodic sweeps until stopped.
func (c *Cache[K, V]) sweepLoop(interval time.Duration) {
	defer c.sweepWg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.closeCh:
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()

	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Size:      size,
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		Expired:   c.expired.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats resets the statistics counters.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	c.expired.Store(0)
}

// Stats holds cache statistics.
type Stats struct {
	Size      int     // Current number of entries
	Capacity  int     // Maximum entries allowed (0 = unbounded)
	Hits      uint64  // Number of cache hits
	Misses    uint64  // Number of cache misses
	Evictions uint64  // Number of capacity evictions
	Expired   uint64  // Number of entries dropped by TTL
	HitRate   float64 // Hit rate (0.0 - 1.0)
}
