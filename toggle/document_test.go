package toggle

import (
	"errors"
	"strings"
	"testing"

	"github.com/13byte/highmark/mark"
)

func TestDocumentAddUnique(t *testing.T) {
	doc := "The cat sat."

	res, err := Document(doc, "cat", NewContext("", ""))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Action != ActionAdded {
		t.Errorf("expected added, got %v", res.Action)
	}

	if res.Text != "The ==cat== sat." {
		t.Errorf("expected %q, got %q", "The ==cat== sat.", res.Text)
	}

	if res.Strategy != StrategyUnique {
		t.Errorf("expected unique strategy, got %v", res.Strategy)
	}
}

func TestDocumentRemoveUnique(t *testing.T) {
	doc := "The ==cat== sat."

	res, err := Document(doc, "cat", NewContext("", ""))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Action != ActionRemoved {
		t.Errorf("expected removed, got %v", res.Action)
	}

	if res.Text != "The cat sat." {
		t.Errorf("expected %q, got %q", "The cat sat.", res.Text)
	}
}

func TestDocumentIdempotentPairing(t *testing.T) {
	doc := "The cat sat."
	ctx := NewContext("The ", " sat.")

	first, err := Document(doc, "cat", ctx)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}

	if first.Text != "The ==cat== sat." {
		t.Errorf("expected %q, got %q", "The ==cat== sat.", first.Text)
	}

	second, err := Document(first.Text, "cat", ctx)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	if second.Text != doc {
		t.Errorf("double toggle must restore the original: got %q, want %q", second.Text, doc)
	}

	if second.Action != ActionRemoved {
		t.Errorf("expected removed on second toggle, got %v", second.Action)
	}
}

func TestDocumentContextDisambiguation(t *testing.T) {
	doc := "AAA text BBB\nCCC text DDD"

	res, err := Document(doc, "text", NewContext("CCC ", " DDD"))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	want := "AAA text BBB\nCCC ==text== DDD"
	if res.Text != want {
		t.Errorf("expected %q, got %q", want, res.Text)
	}

	if res.Strategy != StrategyContext {
		t.Errorf("expected context strategy, got %v", res.Strategy)
	}
}

func TestDocumentContextRemove(t *testing.T) {
	doc := "AAA text BBB\nCCC ==text== DDD"

	// Rendered context never shows the markers, so the delimited form is
	// probed first.
	res, err := Document(doc, "text", NewContext("CCC ", " DDD"))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Action != ActionRemoved {
		t.Errorf("expected removed, got %v", res.Action)
	}

	want := "AAA text BBB\nCCC text DDD"
	if res.Text != want {
		t.Errorf("expected %q, got %q", want, res.Text)
	}
}

func TestDocumentContextAtDocumentStart(t *testing.T) {
	doc := "word and more"

	res, err := Document(doc, "word", NewContext("", " and"))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Text != "==word== and more" {
		t.Errorf("expected %q, got %q", "==word== and more", res.Text)
	}
}

func TestDocumentContextAtDocumentEnd(t *testing.T) {
	doc := "more and word"

	res, err := Document(doc, "word", NewContext("and ", ""))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Text != "more and ==word==" {
		t.Errorf("expected %q, got %q", "more and ==word==", res.Text)
	}
}

func TestDocumentContextFirstOccurrence(t *testing.T) {
	// Identical context on both lines: the first match wins by contract.
	doc := "A text B\nA text B"

	res, err := Document(doc, "text", NewContext("A ", " B"))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	want := "A ==text== B\nA text B"
	if res.Text != want {
		t.Errorf("expected %q, got %q", want, res.Text)
	}
}

func TestDocumentLineFallbackAdd(t *testing.T) {
	// Rendered context contains a non-breaking space the raw document does
	// not, so the exact match fails and the structural line repairs it.
	doc := "alpha\nbravo text charlie"
	ctx := Context{Before: "bravo\u00a0", After: "", Line: 1}

	res, err := Document(doc, "text", ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	want := "alpha\nbravo ==text== charlie"
	if res.Text != want {
		t.Errorf("expected %q, got %q", want, res.Text)
	}

	if res.Strategy != StrategyLine {
		t.Errorf("expected line strategy, got %v", res.Strategy)
	}
}

func TestDocumentLineFallbackRemove(t *testing.T) {
	doc := "alpha\nbravo ==text== charlie"
	ctx := Context{Before: "bravo\u00a0", After: "", Line: 1}

	res, err := Document(doc, "text", ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Action != ActionRemoved {
		t.Errorf("expected removed, got %v", res.Action)
	}

	want := "alpha\nbravo text charlie"
	if res.Text != want {
		t.Errorf("expected %q, got %q", want, res.Text)
	}
}

func TestDocumentLineFallbackFirstOccurrenceInLine(t *testing.T) {
	doc := "text and text"
	ctx := Context{Before: "mismatched ", After: "", Line: 0}

	res, err := Document(doc, "text", ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Text != "==text== and text" {
		t.Errorf("expected %q, got %q", "==text== and text", res.Text)
	}
}

func TestDocumentLineOutOfRangeFallsThrough(t *testing.T) {
	doc := "only line"
	ctx := Context{Before: "no match", After: "", Line: 99}

	res, err := Document(doc, "only", ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	// Strategies 1 and 2 cannot apply; global uniqueness resolves it.
	if res.Strategy != StrategyUnique {
		t.Errorf("expected unique strategy, got %v", res.Strategy)
	}

	if res.Text != "==only== line" {
		t.Errorf("expected %q, got %q", "==only== line", res.Text)
	}
}

func TestDocumentAmbiguous(t *testing.T) {
	doc := "text and text"

	_, err := Document(doc, "text", NewContext("", ""))
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous, got %v", err)
	}
}

func TestDocumentAmbiguousDelimited(t *testing.T) {
	doc := "==text== and ==text=="

	_, err := Document(doc, "text", NewContext("", ""))
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous, got %v", err)
	}
}

func TestDocumentNotFound(t *testing.T) {
	doc := "nothing here"

	_, err := Document(doc, "missing", NewContext("", ""))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDocumentEmptySelection(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := Document("doc", text, NewContext("", ""))
		if !errors.Is(err, ErrEmptySelection) {
			t.Errorf("Document(%q): expected ErrEmptySelection, got %v", text, err)
		}
	}
}

func TestDocumentUniqueRemovePrecedence(t *testing.T) {
	// A single delimited occurrence is removed even when bare occurrences
	// exist elsewhere.
	doc := "text and ==text=="

	res, err := Document(doc, "text", NewContext("", ""))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Action != ActionRemoved {
		t.Errorf("expected removed, got %v", res.Action)
	}

	if res.Text != "text and text" {
		t.Errorf("expected %q, got %q", "text and text", res.Text)
	}
}

func TestDocumentInvariantSingleDelimitedChange(t *testing.T) {
	m := mark.Default()
	doc := "one two three\ntwo is repeated: two"
	ctx := NewContext("one ", " three")

	res, err := Document(doc, "two", ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	before := m.CountWrapped(doc, "two")
	after := m.CountWrapped(res.Text, "two")
	if after-before != 1 {
		t.Errorf("expected delimited count to rise by 1, got %d -> %d", before, after)
	}

	// Everything outside the replaced region is untouched.
	if !strings.Contains(res.Text, "two is repeated: two") {
		t.Errorf("unrelated text was altered: %q", res.Text)
	}
}

func TestDocumentCustomMarker(t *testing.T) {
	m := mark.New("**")
	doc := "The cat sat."

	res, err := Document(doc, "cat", NewContext("", ""), WithMarker(m))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if res.Text != "The **cat** sat." {
		t.Errorf("expected %q, got %q", "The **cat** sat.", res.Text)
	}
}

func TestDocumentMemoization(t *testing.T) {
	c := NewCache(8, 0)
	doc := "The cat sat."
	ctx := NewContext("The ", " sat.")

	first, err := Document(doc, "cat", ctx, WithCache(c))
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	second, err := Document(doc, "cat", ctx, WithCache(c))
	if err != nil {
		t.Fatalf("memoized toggle failed: %v", err)
	}

	if first != second {
		t.Errorf("memoized result differs: %+v vs %+v", first, second)
	}

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("expected 1 cache hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 cache miss, got %d", stats.Misses)
	}
}

func TestDocumentMemoizedError(t *testing.T) {
	c := NewCache(8, 0)
	doc := "text and text"
	ctx := NewContext("", "")

	_, err1 := Document(doc, "text", ctx, WithCache(c))
	_, err2 := Document(doc, "text", ctx, WithCache(c))

	if !errors.Is(err1, ErrAmbiguous) || !errors.Is(err2, ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous both times, got %v / %v", err1, err2)
	}

	if c.Stats().Hits != 1 {
		t.Errorf("expected ambiguity outcome to be memoized, stats %+v", c.Stats())
	}
}

func TestDocumentDistinctInputsMissCache(t *testing.T) {
	c := NewCache(8, 0)

	if _, err := Document("The cat sat.", "cat", NewContext("", ""), WithCache(c)); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	// Different context must not reuse the earlier entry.
	if _, err := Document("The cat sat.", "cat", NewContext("The ", ""), WithCache(c)); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if got := c.Stats().Hits; got != 0 {
		t.Errorf("expected 0 hits for distinct inputs, got %d", got)
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := NewContext("a", "")

	if ctx.HasLine() {
		t.Error("NewContext must not carry a line index")
	}

	if !ctx.HasText() {
		t.Error("expected HasText with a before snippet")
	}

	withLine := ctx.WithLine(3)
	if !withLine.HasLine() || withLine.Line != 3 {
		t.Errorf("expected line 3, got %+v", withLine)
	}

	if NewContext("", "").HasText() {
		t.Error("expected no text for empty context")
	}
}
