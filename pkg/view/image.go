package view

import (
	"image"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
)

// ImageNode displays a bitmap.
type ImageNode struct {
	Base
	img    image.Image
	tinted bool
}

// NewImage creates an image node with no bitmap.
func NewImage(id ident.ViewID) *ImageNode {
	n := &ImageNode{}
	n.init(n, id, descriptor.KindImage)
	return n
}

// Image returns the bitmap, or nil while unresolved.
func (n *ImageNode) Image() image.Image { return n.img }

// Tinted reports whether the bitmap was recolored with the accent color.
func (n *ImageNode) Tinted() bool { return n.tinted }

// SetImage sets the bitmap.
func (n *ImageNode) SetImage(img image.Image, tinted bool) {
	n.img = img
	n.tinted = tinted
}

// DividerNode is a horizontal rule between sections.
type DividerNode struct {
	Base
}

// NewDivider creates a divider.
func NewDivider(id ident.ViewID) *DividerNode {
	n := &DividerNode{}
	n.init(n, id, descriptor.KindDivider)
	n.props.Layout.Width = descriptor.MatchParent
	return n
}
