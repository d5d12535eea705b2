// Package render models the host's rendered document view as a parsed
// HTML tree and extracts toggle contexts from selections made in it.
//
// The rendered view shows the document without its markup, so a selection
// arrives as a text node plus byte offsets into it. Extract captures the
// selected text together with the surrounding rendered context the toggle
// engine uses to locate the matching occurrence in the serialized
// document.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Selection identifies a user selection in the rendered view: a text node
// and byte offsets into its data.
type Selection struct {
	Node  *html.Node
	Start int
	End   int
}

// Text returns the selected substring, or "" when the selection is
// invalid.
func (s Selection) Text() string {
	if s.validate() != nil {
		return ""
	}
	return s.Node.Data[s.Start:s.End]
}

func (s Selection) validate() error {
	if s.Node == nil {
		return ErrNoSelection
	}
	if s.Node.Type != html.TextNode {
		return ErrNotTextNode
	}
	if s.Start < 0 || s.End < s.Start || s.End > len(s.Node.Data) {
		return ErrInvalidOffsets
	}
	return nil
}

// ParseDocument parses a rendered document into its node tree.
func ParseDocument(r io.Reader) (*html.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse rendered document: %w", err)
	}
	return root, nil
}

// FindText returns a selection covering the first occurrence of text
// within a single text node under root. It is a convenience for hosts
// that track selections as strings rather than node offsets.
func FindText(root *html.Node, text string) (Selection, bool) {
	if root == nil || text == "" {
		return Selection{}, false
	}

	var sel Selection
	var found bool
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.TextNode {
			if i := strings.Index(n.Data, text); i >= 0 {
				sel = Selection{Node: n, Start: i, End: i + len(text)}
				found = true
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return sel, found
}
