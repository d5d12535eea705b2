// Package config holds the tunable settings for the toggle service and
// loaders for host configuration files.
//
// Loading is offered to the embedding host; the service itself never
// writes configuration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults for the toggle service.
const (
	DefaultDelimiter       = "=="
	DefaultContextRadius   = 20
	DefaultCacheCapacity   = 256
	DefaultCacheTTL        = 5 * time.Minute
	DefaultSweepInterval   = time.Minute
	DefaultMaxDocumentSize = 10 * 1024 * 1024
	DefaultLogLevel        = "info"
)

// Config holds the tunable settings for the toggle service.
type Config struct {
	// Delimiter is the highlight delimiter pair. Always a single pair.
	Delimiter string

	// ContextRadius is the number of grapheme clusters captured either
	// side of a rendered selection.
	ContextRadius int

	// CacheCapacity bounds the memo cache entry count. Zero leaves the
	// count unbounded; entries still age out by CacheTTL.
	CacheCapacity int

	// CacheTTL bounds the age of memo entries. Zero keeps entries until
	// capacity evicts them.
	CacheTTL time.Duration

	// SweepInterval is how often expired memo entries are swept. Zero
	// disables the background sweeper.
	SweepInterval time.Duration

	// MaxDocumentSize bounds documents read from disk, in bytes. Zero
	// means unlimited.
	MaxDocumentSize int64

	// LogLevel is the minimum level emitted by the service logger:
	// debug, info, warn or error.
	LogLevel string
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Delimiter:       DefaultDelimiter,
		ContextRadius:   DefaultContextRadius,
		CacheCapacity:   DefaultCacheCapacity,
		CacheTTL:        DefaultCacheTTL,
		SweepInterval:   DefaultSweepInterval,
		MaxDocumentSize: DefaultMaxDocumentSize,
		LogLevel:        DefaultLogLevel,
	}
}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Delimiter) == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if c.ContextRadius < 0 {
		return fmt.Errorf("context radius must not be negative: %d", c.ContextRadius)
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("cache capacity must not be negative: %d", c.CacheCapacity)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative: %v", c.CacheTTL)
	}
	if c.SweepInterval < 0 {
		return fmt.Errorf("sweep interval must not be negative: %v", c.SweepInterval)
	}
	if c.MaxDocumentSize < 0 {
		return fmt.Errorf("max document size must not be negative: %d", c.MaxDocumentSize)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}
