package cache

import (
	"testing"
	"time"
)

func TestGetPut(t *testing.T) {
	c := New[string, int](10, 0)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for absent key")
	}

	c.Put("a", 1)

	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", got, ok)
	}

	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestPutOverwrites(t *testing.T) {
	c := New[string, int](10, 0)

	c.Put("a", 1)
	c.Put("a", 2)

	got, ok := c.Get("a")
	if !ok || got != 2 {
		t.Errorf("expected (2, true), got (%d, %v)", got, ok)
	}

	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestCapacityEviction(t *testing.T) {
	c := New[int, int](3, 0)

	for i := 0; i < 3; i++ {
		c.Put(i, i)
		time.Sleep(time.Millisecond)
	}

	// Touch 0 so 1 becomes the least recently used entry.
	if _, ok := c.Get(0); !ok {
		t.Fatal("expected hit for key 0")
	}
	time.Sleep(time.Millisecond)

	c.Put(3, 3)

	if c.Len() != 3 {
		t.Errorf("expected 3 entries after eviction, got %d", c.Len())
	}

	if _, ok := c.Get(1); ok {
		t.Error("expected least recently used key 1 to be evicted")
	}

	if _, ok := c.Get(0); !ok {
		t.Error("expected recently used key 0 to survive")
	}

	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("expected 1 eviction, got %d", got)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New[string, int](10, 20*time.Millisecond)

	c.Put("a", 1)

	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("expected miss after expiry")
	}

	if c.Len() != 0 {
		t.Errorf("expected expired entry to be dropped, %d remain", c.Len())
	}
}

func TestSweep(t *testing.T) {
	c := New[int, int](0, 20*time.Millisecond)

	for i := 0; i < 5; i++ {
		c.Put(i, i)
	}

	if got := c.Sweep(); got != 0 {
		t.Errorf("expected 0 swept before expiry, got %d", got)
	}

	time.Sleep(40 * time.Millisecond)

	if got := c.Sweep(); got != 5 {
		t.Errorf("expected 5 swept after expiry, got %d", got)
	}

	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestSweeperLifecycle(t *testing.T) {
	c := New[int, int](0, 10*time.Millisecond)

	c.Put(1, 1)
	c.StartSweeper(5 * time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for c.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if c.Len() != 0 {
		t.Error("sweeper did not remove expired entry")
	}

	c.StopSweeper()
	// Stopping twice must not panic or block.
	c.StopSweeper()
}

func TestClear(t *testing.T) {
	c := New[string, string](10, 0)

	c.Put("a", "x")
	c.Put("b", "y")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after clear, got %d", c.Len())
	}
}

func TestStats(t *testing.T) {
	c := New[string, int](10, 0)

	c.Put("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	stats := c.Stats()

	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}

	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}

	if stats.HitRate < 0.66 || stats.HitRate > 0.67 {
		t.Errorf("expected hit rate ~0.667, got %f", stats.HitRate)
	}

	c.ResetStats()
	stats = c.Stats()
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestHashStrings(t *testing.T) {
	if HashStrings("ab", "c") == HashStrings("a", "bc") {
		t.Error("expected length-prefixed parts to hash differently")
	}

	if HashStrings("a", "b") != HashStrings("a", "b") {
		t.Error("expected identical inputs to hash identically")
	}

	if HashStrings("") == HashStrings() {
		t.Error("expected one empty part to differ from no parts")
	}
}
