package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/13byte/highmark/internal/grapheme"
	"github.com/13byte/highmark/toggle"
)

// LineAttr is the attribute renderers use to mark an element with the
// source line it was produced from.
const LineAttr = "data-line"

// blockAtoms are the block-level elements that end the structural line
// walk when no ancestor below them carried LineAttr.
var blockAtoms = map[atom.Atom]bool{
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.P:          true,
	atom.Li:         true,
	atom.Blockquote: true,
}

// Extract captures the selected text and its toggle context from the
// rendered view: up to radius grapheme clusters either side of the
// selection within the same text node, never splitting a cluster, plus a
// best-effort structural line index. Malformed trees must not take the
// caller down; a panic during traversal is recovered and reported as an
// extraction error with an empty context.
func Extract(sel Selection, radius int) (text string, ctx toggle.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			ctx = toggle.NewContext("", "")
			err = fmt.Errorf("%w: %v", ErrExtractFailed, r)
		}
	}()

	if verr := sel.validate(); verr != nil {
		return "", toggle.NewContext("", ""), verr
	}

	data := sel.Node.Data
	text = data[sel.Start:sel.End]

	ctx = toggle.NewContext(
		grapheme.Last(data[:sel.Start], radius),
		grapheme.First(data[sel.End:], radius),
	)
	if line, ok := structuralLine(sel.Node); ok {
		ctx = ctx.WithLine(line)
	}
	return text, ctx, nil
}

// structuralLine walks from the selection toward the root looking for a
// LineAttr value. The walk stops without an index at the first block
// element lacking the attribute.
func structuralLine(n *html.Node) (int, bool) {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		for _, a := range cur.Attr {
			if a.Key != LineAttr {
				continue
			}
			line, err := strconv.Atoi(strings.TrimSpace(a.Val))
			if err != nil || line < 0 {
				return 0, false
			}
			return line, true
		}
		if blockAtoms[cur.DataAtom] {
			return 0, false
		}
	}
	return 0, false
}
