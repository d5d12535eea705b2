package buffer

import (
	"errors"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrRangeInvalid   = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a line-addressable text buffer.
// Lines are stored without their line endings; the ending style is kept
// separately and reapplied on serialization. All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	lineEnding LineEnding
	version    int64
}

// NewBuffer creates a new empty buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		lineEnding: LineEndingLF,
		version:    1,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// The line ending style is detected from the content unless overridden
// by an option.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := &Buffer{
		lineEnding: DetectLineEnding(s),
		version:    1,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.lines = strings.Split(normalizeToLF(s), "\n")
	return b
}

// normalizeToLF converts all line endings to LF for internal storage.
func normalizeToLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// Read Operations

// Text returns the full buffer content serialized with the buffer's line
// ending style.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, b.lineEnding.Sequence())
}

// Len returns the total byte length of the serialized buffer.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, line := range b.lines {
		n += len(line)
	}
	if len(b.lines) > 1 {
		n += (len(b.lines) - 1) * len(b.lineEnding.Sequence())
	}
	return n
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a specific line (without line ending).
// Returns the empty string for out-of-range lines.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the length of a specific line in bytes (without line
// ending). Returns -1 for out-of-range lines.
func (b *Buffer) LineLen(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 || line >= len(b.lines) {
		return -1
	}
	return len(b.lines[line])
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// TextRange returns the text within the given range, joined with LF for
// multi-line ranges.
func (b *Buffer) TextRange(r Range) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.validateRange(r); err != nil {
		return "", err
	}

	if r.IsSingleLine() {
		return b.lines[r.Start.Line][r.Start.Column:r.End.Column], nil
	}

	var sb strings.Builder
	sb.WriteString(b.lines[r.Start.Line][r.Start.Column:])
	for line := r.Start.Line + 1; line < r.End.Line; line++ {
		sb.WriteString("\n")
		sb.WriteString(b.lines[line])
	}
	sb.WriteString("\n")
	sb.WriteString(b.lines[r.End.Line][:r.End.Column])
	return sb.String(), nil
}

// Write Operations

// ReplaceRange replaces the text within the given range.
// The replacement may contain line breaks, which are normalized to the
// internal representation. Returns the position immediately after the
// inserted text.
func (b *Buffer) ReplaceRange(r Range, text string) (Point, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.validateRange(r); err != nil {
		return Point{}, err
	}

	prefix := b.lines[r.Start.Line][:r.Start.Column]
	suffix := b.lines[r.End.Line][r.End.Column:]
	segments := strings.Split(normalizeToLF(text), "\n")

	end := Point{
		Line:   r.Start.Line + len(segments) - 1,
		Column: len(segments[len(segments)-1]),
	}
	if len(segments) == 1 {
		end.Column += r.Start.Column
	}

	segments[0] = prefix + segments[0]
	segments[len(segments)-1] += suffix

	replaced := make([]string, 0, len(b.lines)-(r.End.Line-r.Start.Line+1)+len(segments))
	replaced = append(replaced, b.lines[:r.Start.Line]...)
	replaced = append(replaced, segments...)
	replaced = append(replaced, b.lines[r.End.Line+1:]...)

	b.lines = replaced
	b.version++
	return end, nil
}

// Insert inserts text at the given point.
// Returns the position immediately after the inserted text.
func (b *Buffer) Insert(p Point, text string) (Point, error) {
	return b.ReplaceRange(Range{Start: p, End: p}, text)
}

// Delete removes the text within the given range.
func (b *Buffer) Delete(r Range) error {
	_, err := b.ReplaceRange(r, "")
	return err
}

// validateRange checks that a range addresses existing lines and columns.
// Must be called with at least a read lock held.
func (b *Buffer) validateRange(r Range) error {
	if !r.IsValid() {
		return ErrRangeInvalid
	}
	if r.Start.Line < 0 || r.End.Line >= len(b.lines) {
		return ErrLineOutOfRange
	}
	if r.Start.Column < 0 || r.Start.Column > len(b.lines[r.Start.Line]) {
		return ErrRangeInvalid
	}
	if r.End.Column < 0 || r.End.Column > len(b.lines[r.End.Line]) {
		return ErrRangeInvalid
	}
	return nil
}

// Buffer State

// Version returns the current buffer version.
// The version is incremented on each successful mutation.
func (b *Buffer) Version() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding sets the buffer's line ending style.
// This affects serialization only; stored lines are unchanged.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}
