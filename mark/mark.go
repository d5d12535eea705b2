// Package mark provides the inline delimiter primitives used to wrap,
// unwrap, and count highlighted text. A Marker is a value type; the zero
// value is not valid, use New or Default.
package mark

import "strings"

// DefaultDelimiter is the standard highlight delimiter.
const DefaultDelimiter = "=="

// Marker wraps and unwraps text with a single inline delimiter pair.
// All matching is literal; the delimiter carries no pattern syntax.
type Marker struct {
	delim string
}

// New creates a Marker for the given delimiter.
// An empty delimiter falls back to DefaultDelimiter.
func New(delim string) Marker {
	if delim == "" {
		delim = DefaultDelimiter
	}
	return Marker{delim: delim}
}

// Default returns a Marker using DefaultDelimiter.
func Default() Marker {
	return New(DefaultDelimiter)
}

// Delimiter returns the delimiter string.
func (m Marker) Delimiter() string {
	return m.delim
}

// Width returns the delimiter length in bytes.
func (m Marker) Width() int {
	return len(m.delim)
}

// Wrap returns text surrounded by the delimiter pair.
func (m Marker) Wrap(text string) string {
	return m.delim + text + m.delim
}

// IsWrapped reports whether text starts and ends with the delimiter.
// Text shorter than a full pair is never considered wrapped.
func (m Marker) IsWrapped(text string) bool {
	if len(text) < 2*len(m.delim) {
		return false
	}
	return strings.HasPrefix(text, m.delim) && strings.HasSuffix(text, m.delim)
}

// Unwrap strips one delimiter pair from text.
// Returns the input unchanged and false if text is not wrapped.
func (m Marker) Unwrap(text string) (string, bool) {
	if !m.IsWrapped(text) {
		return text, false
	}
	return text[len(m.delim) : len(text)-len(m.delim)], true
}

// Count returns the number of non-overlapping literal occurrences of text
// in doc. An empty text returns zero rather than the length-derived count
// strings.Count would report.
func (m Marker) Count(doc, text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(doc, text)
}

// CountWrapped returns the number of occurrences of the delimited form of
// text in doc.
func (m Marker) CountWrapped(doc, text string) int {
	return m.Count(doc, m.Wrap(text))
}
