package render

import "errors"

// Sentinel errors reported by selection validation and context extraction.
var (
	// ErrNoSelection indicates the selection carries no node.
	ErrNoSelection = errors.New("no selection node")

	// ErrNotTextNode indicates the selection node is not a text node.
	ErrNotTextNode = errors.New("selection is not a text node")

	// ErrInvalidOffsets indicates the selection offsets do not address the
	// node's text.
	ErrInvalidOffsets = errors.New("selection offsets out of range")

	// ErrExtractFailed indicates the rendered tree could not be traversed.
	ErrExtractFailed = errors.New("context extraction failed")
)
