package toggle

import (
	"errors"
	"strconv"
	"time"

	"github.com/13byte/highmark/cache"
	"github.com/13byte/highmark/mark"
)

// Outcome is a memoized toggle computation: the result and error exactly
// as originally returned.
type Outcome struct {
	result Result
	err    error
}

// Cache memoizes toggle computations keyed by a hash of their inputs.
type Cache = cache.Cache[uint64, Outcome]

// NewCache creates a toggle memo cache bounded by capacity and ttl.
func NewCache(capacity int, ttl time.Duration) *Cache {
	return cache.New[uint64, Outcome](capacity, ttl)
}

// hashInputs derives the memo key for a document toggle.
// Every input that can influence the result participates.
func hashInputs(doc, text string, ctx Context, m mark.Marker) uint64 {
	return cache.HashStrings(
		doc,
		text,
		ctx.Before,
		ctx.After,
		strconv.Itoa(ctx.Line),
		m.Delimiter(),
	)
}

// cacheable reports whether an outcome is deterministic for its inputs.
func cacheable(err error) bool {
	return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrAmbiguous)
}
