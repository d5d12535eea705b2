package highmark

import (
	"github.com/13byte/highmark/config"
	"github.com/13byte/highmark/logging"
	"github.com/13byte/highmark/mark"
	"github.com/13byte/highmark/toggle"
)

// Option configures a Toggler.
type Option func(*Toggler)

// WithNotifier sets the sink for transient user notices.
func WithNotifier(n Notifier) Option {
	return func(t *Toggler) {
		if n != nil {
			t.notifier = n
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *logging.Logger) Option {
	return func(t *Toggler) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMarker sets the delimiter pair toggled around selections.
func WithMarker(m mark.Marker) Option {
	return func(t *Toggler) {
		t.marker = m
	}
}

// WithContextRadius sets how many grapheme clusters of surrounding
// context rendered-mode extraction captures on each side.
func WithContextRadius(radius int) Option {
	return func(t *Toggler) {
		if radius >= 0 {
			t.radius = radius
		}
	}
}

// WithCache replaces the owned memo cache. The caller keeps the cache's
// sweeper lifecycle; nil disables memoization.
func WithCache(c *toggle.Cache) Option {
	return func(t *Toggler) {
		t.cache = c
		t.cacheSet = true
	}
}

// WithConfig applies a validated configuration: delimiter, context
// radius, and the owned cache's capacity, TTL and sweep interval.
// Store-level settings (MaxDocumentSize) belong to the store
// constructors; LogLevel belongs to the logger the host injects.
func WithConfig(cfg config.Config) Option {
	return func(t *Toggler) {
		t.marker = mark.New(cfg.Delimiter)
		if cfg.ContextRadius >= 0 {
			t.radius = cfg.ContextRadius
		}
		t.cacheCap = cfg.CacheCapacity
		t.cacheTTL = cfg.CacheTTL
		t.sweep = cfg.SweepInterval
	}
}
