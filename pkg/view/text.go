package view

import (
	"slices"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/resources"
)

// TextNode displays styled text with optional clickable links.
type TextNode struct {
	Base
	raw        string
	spans      []Span
	appearance *resources.TextAppearance
	gravity    int
	writes     int
	onLink     func(link int)
}

// NewText creates a text node.
func NewText(id ident.ViewID) *TextNode {
	n := &TextNode{}
	n.init(n, id, descriptor.KindText)
	return n
}

// Text returns the raw text including markup.
func (n *TextNode) Text() string { return n.raw }

// Spans returns the parsed spans.
func (n *TextNode) Spans() []Span { return n.spans }

// Writes counts SetText calls that reached the node.
func (n *TextNode) Writes() int { return n.writes }

// SetText replaces the text.
func (n *TextNode) SetText(raw string) {
	n.raw = raw
	n.spans = ParseMarkup(raw)
	n.writes++
}

// Links returns the link ids present in the text, in order of appearance.
func (n *TextNode) Links() []int {
	var links []int
	for _, s := range n.spans {
		if s.Link >= 0 && !slices.Contains(links, s.Link) {
			links = append(links, s.Link)
		}
	}
	return links
}

// SetOnLink sets the link click listener.
func (n *TextNode) SetOnLink(fn func(link int)) { n.onLink = fn }

// ClickLink simulates the user tapping link. It returns false if the node is
// disposed or the text has no such link.
func (n *TextNode) ClickLink(link int) bool {
	if !n.Alive() || n.onLink == nil || !slices.Contains(n.Links(), link) {
		return false
	}
	n.onLink(link)
	return true
}

// Appearance returns the applied text appearance, or nil.
func (n *TextNode) Appearance() *resources.TextAppearance { return n.appearance }

// SetAppearance applies a text appearance. Nil clears it.
func (n *TextNode) SetAppearance(ta *resources.TextAppearance) { n.appearance = ta }

// Gravity returns the text gravity.
func (n *TextNode) Gravity() int { return n.gravity }

// SetGravity sets the text gravity.
func (n *TextNode) SetGravity(g int) { n.gravity = g }
