// Package toggle implements the highlight toggle: deciding whether a
// selection is currently delimited, locating the exact occurrence the user
// selected, and computing the replacement text.
//
// Document toggles resolve the occurrence with three strategies, tried in
// order until one succeeds:
//
//  1. Exact context match: the selection surrounded by its rendered
//     context is located literally in the document.
//  2. Structural line fallback: the selection is located within the single
//     line named by the context's structural index.
//  3. Global uniqueness fallback: the selection occurs exactly once in the
//     whole document.
//
// The delimited form is always tried before the bare form, so a selection
// that is already highlighted toggles to a removal. When no strategy
// yields a unique occurrence the toggle fails with ErrAmbiguous and the
// document is left untouched; the engine never guesses among
// equally-plausible occurrences.
//
// All matching is literal substring matching. Toggles are stateless per
// call; an optional cache memoizes repeated identical computations without
// changing results.
package toggle

import "strings"

// Document computes the toggled replacement for a serialized document,
// given the selected text and its rendered context. On success the
// returned Result carries the full replacement document; on failure the
// document is unchanged and the error names the reason.
func Document(doc, text string, ctx Context, opts ...Option) (Result, error) {
	set := newSettings(opts)

	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptySelection
	}

	if set.cache == nil {
		return toggleDocument(doc, text, ctx, set)
	}

	key := hashInputs(doc, text, ctx, set.marker)
	if out, ok := set.cache.Get(key); ok {
		return out.result, out.err
	}

	res, err := toggleDocument(doc, text, ctx, set)
	if cacheable(err) {
		set.cache.Put(key, Outcome{result: res, err: err})
	}
	return res, err
}

// toggleDocument runs the disambiguation strategies in order.
func toggleDocument(doc, text string, ctx Context, set settings) (Result, error) {
	wrapped := set.marker.Wrap(text)

	// Strategy 1: exact context match. Skipped when no context text was
	// captured at all, otherwise it would degenerate to first-occurrence
	// guessing.
	if ctx.HasText() {
		if res, ok := matchContext(doc, text, wrapped, ctx); ok {
			return res, nil
		}
	}

	// Strategy 2: structural line fallback. Repairs cases where rendered
	// whitespace differs from the serialized text.
	if ctx.HasLine() {
		if res, ok := matchLine(doc, text, wrapped, ctx.Line); ok {
			return res, nil
		}
	}

	// Strategy 3: global uniqueness fallback. Deliberately conservative:
	// an add requires the bare text to be unique with no delimited
	// occurrence anywhere.
	wrappedCount := set.marker.CountWrapped(doc, text)
	if wrappedCount == 1 {
		return removed(strings.Replace(doc, wrapped, text, 1), StrategyUnique), nil
	}

	bareCount := set.marker.Count(doc, text)
	if wrappedCount == 0 && bareCount == 1 {
		return added(strings.Replace(doc, text, wrapped, 1), StrategyUnique), nil
	}

	if wrappedCount == 0 && bareCount == 0 {
		return Result{}, ErrNotFound
	}
	return Result{}, ErrAmbiguous
}

// matchContext searches for the selection surrounded by its exact rendered
// context, delimited form first. The substitution happens at the first
// matching position; truncated context at document edges still matches.
func matchContext(doc, text, wrapped string, ctx Context) (Result, bool) {
	needle := ctx.Before + wrapped + ctx.After
	if i := strings.Index(doc, needle); i >= 0 {
		repl := ctx.Before + text + ctx.After
		return removed(spliceAt(doc, i, len(needle), repl), StrategyContext), true
	}

	needle = ctx.Before + text + ctx.After
	if i := strings.Index(doc, needle); i >= 0 {
		repl := ctx.Before + wrapped + ctx.After
		return added(spliceAt(doc, i, len(needle), repl), StrategyContext), true
	}

	return Result{}, false
}

// matchLine mutates the single structural line when it contains the
// target, delimited form first, and reassembles the document.
func matchLine(doc, text, wrapped string, line int) (Result, bool) {
	lines := strings.Split(doc, "\n")
	if line < 0 || line >= len(lines) {
		return Result{}, false
	}

	if strings.Contains(lines[line], wrapped) {
		lines[line] = strings.Replace(lines[line], wrapped, text, 1)
		return removed(strings.Join(lines, "\n"), StrategyLine), true
	}

	if strings.Contains(lines[line], text) {
		lines[line] = strings.Replace(lines[line], text, wrapped, 1)
		return added(strings.Join(lines, "\n"), StrategyLine), true
	}

	return Result{}, false
}

// spliceAt replaces oldLen bytes of doc at offset i with repl.
func spliceAt(doc string, i, oldLen int, repl string) string {
	return doc[:i] + repl + doc[i+oldLen:]
}
