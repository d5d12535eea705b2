package toggle

import (
	"strings"

	"github.com/13byte/highmark/buffer"
)

// BufferSelection toggles the highlight on a live buffer selection.
// The selection range is the position, so no disambiguation is needed:
// the region is inspected for delimiters just outside and just inside the
// selection, then edited in place. The returned Result carries the text
// now occupying the edited region.
func BufferSelection(buf *buffer.Buffer, sel buffer.Range, opts ...Option) (Result, error) {
	set := newSettings(opts)

	if buf == nil {
		return Result{}, ErrNoBuffer
	}
	if !sel.IsValid() {
		return Result{}, buffer.ErrRangeInvalid
	}

	text, err := buf.TextRange(sel)
	if err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptySelection
	}

	delim := set.marker.Delimiter()
	w := set.marker.Width()

	// Read the delimiter-width characters either side of the selection on
	// its start and end lines, clamping so short lines and selections at
	// line edges never read out of bounds.
	startLine := buf.LineText(sel.Start.Line)
	endLine := buf.LineText(sel.End.Line)

	beforeStart := sel.Start.Column - w
	if beforeStart < 0 {
		beforeStart = 0
	}
	before := startLine[beforeStart:sel.Start.Column]

	afterEnd := sel.End.Column + w
	if afterEnd > len(endLine) {
		afterEnd = len(endLine)
	}
	after := endLine[sel.End.Column:afterEnd]

	// Delimiters just outside the selection: extend the region over them
	// and replace with the bare text.
	if before == delim && after == delim {
		extended := buffer.Range{
			Start: buffer.Point{Line: sel.Start.Line, Column: sel.Start.Column - w},
			End:   buffer.Point{Line: sel.End.Line, Column: sel.End.Column + w},
		}
		if _, err := buf.ReplaceRange(extended, text); err != nil {
			return Result{}, err
		}
		return removed(text, StrategySelection), nil
	}

	// Delimiters inside the selection: strip them.
	if bare, ok := set.marker.Unwrap(text); ok {
		if _, err := buf.ReplaceRange(sel, bare); err != nil {
			return Result{}, err
		}
		return removed(bare, StrategySelection), nil
	}

	wrapped := set.marker.Wrap(text)
	if _, err := buf.ReplaceRange(sel, wrapped); err != nil {
		return Result{}, err
	}
	return added(wrapped, StrategySelection), nil
}
