// Package grapheme provides grapheme-cluster-safe string helpers for
// bounding rendered context snippets.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// First returns the first n grapheme clusters of text.
// If text holds fewer clusters, the whole text is returned.
func First(text string, n int) string {
	if text == "" || n <= 0 {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	var sb strings.Builder
	for i := 0; i < n && g.Next(); i++ {
		sb.WriteString(g.Str())
	}
	if sb.Len() == len(text) {
		return text
	}
	return sb.String()
}

// Last returns the last n grapheme clusters of text.
// If text holds fewer clusters, the whole text is returned.
func Last(text string, n int) string {
	if text == "" || n <= 0 {
		return ""
	}

	total := Count(text)
	if total <= n {
		return text
	}

	g := uniseg.NewGraphemes(text)
	skip := total - n
	for i := 0; i < skip && g.Next(); i++ {
	}

	var sb strings.Builder
	for g.Next() {
		sb.WriteString(g.Str())
	}
	return sb.String()
}
