package toggle

import "errors"

// Errors returned by toggle computations.
var (
	// ErrEmptySelection indicates the selected text is empty or whitespace.
	ErrEmptySelection = errors.New("empty selection")

	// ErrNotFound indicates the selected text occurs nowhere in the document.
	ErrNotFound = errors.New("text not found in document")

	// ErrAmbiguous indicates several occurrences are equally plausible and
	// none could be singled out by context or structure.
	ErrAmbiguous = errors.New("ambiguous match")

	// ErrNoBuffer indicates a buffer-mode toggle without a live buffer.
	ErrNoBuffer = errors.New("no buffer")
)
