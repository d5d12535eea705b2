package toggle

import "github.com/13byte/highmark/mark"

// Option is a functional option for a toggle computation.
type Option func(*settings)

// settings holds the per-call configuration of a toggle.
type settings struct {
	marker mark.Marker
	cache  *Cache
}

// newSettings applies options over the defaults.
func newSettings(opts []Option) settings {
	s := settings{marker: mark.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithMarker sets the delimiter pair used by the toggle.
func WithMarker(m mark.Marker) Option {
	return func(s *settings) {
		s.marker = m
	}
}

// WithCache sets a memoization cache consulted before computing and
// populated afterwards. Memoization never changes results.
func WithCache(c *Cache) Option {
	return func(s *settings) {
		s.cache = c
	}
}
