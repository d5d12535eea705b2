package toggle

// NoLine marks a Context without a structural line index.
const NoLine = -1

// Context carries the rendered surroundings of a selection: bounded
// snippets of the text immediately before and after it, and a best-effort
// structural line index into the serialized document.
//
// The zero Context addresses line 0; use NewContext, or set Line to
// NoLine explicitly, when no structural index is known.
type Context struct {
	// Before is the rendered text immediately preceding the selection.
	Before string

	// After is the rendered text immediately following the selection.
	After string

	// Line is the 0-indexed document line the selection belongs to,
	// or NoLine if no structural index could be determined.
	Line int
}

// NewContext creates a Context with no structural line index.
func NewContext(before, after string) Context {
	return Context{Before: before, After: after, Line: NoLine}
}

// WithLine returns a copy of the context with the line index set.
func (c Context) WithLine(line int) Context {
	c.Line = line
	return c
}

// HasLine returns true if a structural line index was captured.
func (c Context) HasLine() bool {
	return c.Line >= 0
}

// HasText returns true if any surrounding text was captured.
func (c Context) HasText() bool {
	return c.Before != "" || c.After != ""
}
