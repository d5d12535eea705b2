// Package buffer provides a thread-safe, line-addressable text buffer used
// as the live editing surface for buffer-mode toggles.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Line and column addressing with byte-offset columns
//   - Range replacement for selection edits
//   - Line ending detection and normalization
//   - Version tracking for change management
//
// Basic usage:
//
//	// Create a buffer with some text
//	buf := buffer.NewBufferFromString("The cat sat.")
//
//	// Replace a column range on a line
//	buf.ReplaceRange(buffer.Range{
//	    Start: buffer.Point{Line: 0, Column: 4},
//	    End:   buffer.Point{Line: 0, Column: 7},
//	}, "==cat==")
//
// Position Types:
//
// Point is a 0-indexed line and column pair; columns are byte offsets
// within the line. Range is a half-open [Start, End) pair of Points.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock.
package buffer
