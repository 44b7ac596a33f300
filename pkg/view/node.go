// Package view implements the live node tree produced by the builder.
//
// Every node keeps the identifier of the descriptor it was built from for its
// whole lifetime, so callers can find it again with Find instead of keeping a
// side table. Nodes are owned and mutated by the UI thread only.
//
// # Lifecycle
//
// A node is alive from construction until Dispose. Disposal is recursive and
// one-way: it bumps the node's generation, runs the registered dispose hooks,
// and makes every later mutation through a Handle a silent no-op.
package view

import (
	"errors"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/resources"
)

var (
	// ErrDisposed is returned when mutating the structure of a disposed node.
	ErrDisposed = errors.New("view is disposed")
	// ErrHasParent is returned when attaching a node that already has a parent.
	ErrHasParent = errors.New("view already has a parent")
	// ErrNotContainer is returned when attaching to a node that takes no children.
	ErrNotContainer = errors.New("view is not a container")
)

// Orientation of a linear container.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// LayoutParams are the layout parameters applied by the parent. Sizes are in
// pixels, except Width and Height which may be descriptor.MatchParent or
// descriptor.WrapContent.
type LayoutParams struct {
	Width        int
	Height       int
	Weight       float64
	MarginStart  int
	MarginTop    int
	MarginEnd    int
	MarginBottom int
	Gravity      int
	MinWidth     int
	MinHeight    int
}

// Props are the attributes shared by every kind. Sizes are in pixels.
type Props struct {
	PaddingStart       int
	PaddingTop         int
	PaddingEnd         int
	PaddingBottom      int
	Background         *resources.Drawable
	ContentDescription string
	Visible            bool
	Enabled            bool
	Layout             LayoutParams
	Slot               string
}

// Node is a live view.
type Node interface {
	ID() ident.ViewID
	Kind() descriptor.Kind
	Props() *Props
	Parent() Node
	Alive() bool
	Generation() uint64
	Dispose()
	// OnDispose registers fn to run once when the node is disposed.
	OnDispose(fn func())

	base() *Base
}

// Container is a node that accepts appended children.
type Container interface {
	Node
	AddChild(child Node) error
	Children() []Node
	// RemoveAll detaches and returns the children. It does not dispose them.
	RemoveAll() []Node
}

// Base carries the state common to all nodes. It is embedded by every node type.
type Base struct {
	id         ident.ViewID
	kind       descriptor.Kind
	props      Props
	parent     Node
	generation uint64
	disposed   bool
	onClick    func()
	onDispose  []func()
	self       Node
}

func (b *Base) init(self Node, id ident.ViewID, kind descriptor.Kind) {
	b.self = self
	b.id = id
	b.kind = kind
	b.props.Visible = true
	b.props.Enabled = true
	b.props.Layout.Width = descriptor.WrapContent
	b.props.Layout.Height = descriptor.WrapContent
}

func (b *Base) base() *Base { return b }

// ID returns the identifier the node was built with.
func (b *Base) ID() ident.ViewID { return b.id }

// Kind returns the kind the node was built as.
func (b *Base) Kind() descriptor.Kind { return b.kind }

// Props returns the mutable common attributes.
func (b *Base) Props() *Props { return &b.props }

// Parent returns the parent node, or nil.
func (b *Base) Parent() Node { return b.parent }

// Alive reports whether the node has not been disposed.
func (b *Base) Alive() bool { return !b.disposed }

// Generation is incremented when the node is disposed.
func (b *Base) Generation() uint64 { return b.generation }

// SetOnClick sets the click listener.
func (b *Base) SetOnClick(fn func()) { b.onClick = fn }

// Click simulates a user click. It returns false if the node is disposed,
// disabled, hidden, or has no click listener.
func (b *Base) Click() bool {
	if b.disposed || !b.props.Enabled || !b.props.Visible || b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}

// OnDispose registers fn to run once when the node is disposed.
func (b *Base) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if b.disposed {
		fn()
		return
	}
	b.onDispose = append(b.onDispose, fn)
}

// Dispose disposes the node and all of its descendants. Repeated calls are no-ops.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	for _, child := range childNodes(b.self) {
		child.Dispose()
	}
	b.disposed = true
	b.generation++
	b.onClick = nil
	hooks := b.onDispose
	b.onDispose = nil
	for _, fn := range hooks {
		fn()
	}
}

type parentNode interface {
	childNodes() []Node
}

func childNodes(n Node) []Node {
	if p, ok := n.(parentNode); ok {
		return p.childNodes()
	}
	return nil
}

// adopt makes parent the parent of child.
func adopt(parent, child Node) error {
	if child == nil {
		return nil
	}
	if !parent.Alive() || !child.Alive() {
		return ErrDisposed
	}
	if child.Parent() != nil {
		return ErrHasParent
	}
	child.base().parent = parent
	return nil
}

func release(child Node) {
	if child != nil {
		child.base().parent = nil
	}
}

// replaceSlots releases the old slot contents and adopts next into parent.
// On failure the old contents are restored and nothing in next is adopted.
func replaceSlots(parent Node, old, next []Node) error {
	for _, o := range old {
		release(o)
	}
	for i, child := range next {
		if err := adopt(parent, child); err != nil {
			for _, a := range next[:i] {
				release(a)
			}
			for _, o := range old {
				if o != nil {
					o.base().parent = parent
				}
			}
			return err
		}
	}
	return nil
}

// containerBase implements Container for the simple linear containers.
type containerBase struct {
	Base
	children []Node
}

func (c *containerBase) AddChild(child Node) error {
	if child == nil {
		return errors.New("nil child")
	}
	if err := adopt(c.self, child); err != nil {
		return err
	}
	c.children = append(c.children, child)
	return nil
}

func (c *containerBase) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

func (c *containerBase) RemoveAll() []Node {
	removed := c.children
	c.children = nil
	for _, child := range removed {
		release(child)
	}
	return removed
}

func (c *containerBase) childNodes() []Node { return c.children }

// Walk calls fn for root and each descendant, including slotted children, in
// depth-first pre-order. If fn returns false the node's subtree is skipped.
func Walk(root Node, fn func(Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, child := range childNodes(root) {
		Walk(child, fn)
	}
}

// Find returns the first node under root tagged with id.
func Find(root Node, id ident.ViewID) Node {
	var found Node
	Walk(root, func(n Node) bool {
		if found != nil {
			return false
		}
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Handle refers to a node as it was at one generation. Deferred work holds a
// Handle and applies its result only if the node is still that generation.
type Handle struct {
	node Node
	gen  uint64
}

// HandleOf captures n's current generation.
func HandleOf(n Node) Handle {
	return Handle{node: n, gen: n.Generation()}
}

// Live reports whether the node is alive and has not changed generation.
func (h Handle) Live() bool {
	return h.node != nil && h.node.Alive() && h.node.Generation() == h.gen
}

// Apply runs fn with the node if the handle is live. Stale handles are a
// silent no-op.
func (h Handle) Apply(fn func(Node)) bool {
	if !h.Live() {
		return false
	}
	fn(h.node)
	return true
}
