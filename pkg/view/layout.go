package view

import (
	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
)

// LinearLayoutNode stacks its children horizontally or vertically.
type LinearLayoutNode struct {
	containerBase
	orientation Orientation
}

// NewLinearLayout creates a linear layout.
func NewLinearLayout(id ident.ViewID, o Orientation) *LinearLayoutNode {
	n := &LinearLayoutNode{orientation: o}
	n.init(n, id, descriptor.KindLinearLayout)
	return n
}

// Orientation returns the stacking direction.
func (n *LinearLayoutNode) Orientation() Orientation { return n.orientation }

// SetOrientation sets the stacking direction.
func (n *LinearLayoutNode) SetOrientation(o Orientation) { n.orientation = o }

// ChevronStyle controls when an expander shows its chevron.
type ChevronStyle int

const (
	ChevronNotSet ChevronStyle = iota
	ChevronAlways
	ChevronNever
)

// ExpanderNode shows a title and either a collapsed or an expanded view.
type ExpanderNode struct {
	Base
	title     Node
	collapsed Node
	expanded  Node
	chevron   ChevronStyle
	fixed     bool
	isOpen    bool
	onChange  []func(expanded bool)
}

// NewExpander creates an expander. It is fixed unless both the collapsed and
// the expanded view are set.
func NewExpander(id ident.ViewID) *ExpanderNode {
	n := &ExpanderNode{fixed: true}
	n.init(n, id, descriptor.KindVerticalExpander)
	return n
}

// SetSlots places the title, collapsed, and expanded views. Any may be nil.
func (n *ExpanderNode) SetSlots(title, collapsed, expanded Node) error {
	if err := replaceSlots(n, []Node{n.title, n.collapsed, n.expanded}, []Node{title, collapsed, expanded}); err != nil {
		return err
	}
	n.title, n.collapsed, n.expanded = title, collapsed, expanded
	n.fixed = collapsed == nil || expanded == nil
	return nil
}

// Title returns the title view.
func (n *ExpanderNode) Title() Node { return n.title }

// CollapsedView returns the view shown while collapsed.
func (n *ExpanderNode) CollapsedView() Node { return n.collapsed }

// ExpandedView returns the view shown while expanded.
func (n *ExpanderNode) ExpandedView() Node { return n.expanded }

// Fixed reports whether the expander cannot be toggled.
func (n *ExpanderNode) Fixed() bool { return n.fixed }

// Chevron returns the chevron style.
func (n *ExpanderNode) Chevron() ChevronStyle { return n.chevron }

// SetChevron sets the chevron style.
func (n *ExpanderNode) SetChevron(s ChevronStyle) { n.chevron = s }

// Expanded reports whether the expanded view is showing.
func (n *ExpanderNode) Expanded() bool { return n.isOpen }

// SetExpanded expands or collapses the view and notifies listeners on change.
func (n *ExpanderNode) SetExpanded(expanded bool) {
	if n.isOpen == expanded {
		return
	}
	n.isOpen = expanded
	for _, fn := range n.onChange {
		fn(expanded)
	}
}

// ToggleExpanded simulates a tap on the title. Fixed expanders ignore it.
func (n *ExpanderNode) ToggleExpanded() bool {
	if !n.Alive() || n.fixed || !n.props.Enabled {
		return false
	}
	n.SetExpanded(!n.isOpen)
	return true
}

func (n *ExpanderNode) addExpandListener(fn func(bool)) {
	n.onChange = append(n.onChange, fn)
}

func (n *ExpanderNode) childNodes() []Node { return nonNil(n.title, n.collapsed, n.expanded) }

// AccordionNode is a linear container in which at most one expander child is
// expanded at a time.
type AccordionNode struct {
	containerBase
	orientation Orientation
}

// NewAccordion creates an accordion.
func NewAccordion(id ident.ViewID, o Orientation) *AccordionNode {
	n := &AccordionNode{orientation: o}
	n.init(n, id, descriptor.KindVerticalExpanderAccordion)
	return n
}

// Orientation returns the stacking direction.
func (n *AccordionNode) Orientation() Orientation { return n.orientation }

// SetOrientation sets the stacking direction.
func (n *AccordionNode) SetOrientation(o Orientation) { n.orientation = o }

// AddChild appends child. Expander children join the accordion group.
func (n *AccordionNode) AddChild(child Node) error {
	if err := n.containerBase.AddChild(child); err != nil {
		return err
	}
	if e, ok := child.(*ExpanderNode); ok {
		e.addExpandListener(func(expanded bool) {
			if expanded && e.Parent() == Node(n) {
				n.collapseOthers(e)
			}
		})
	}
	return nil
}

// ExpandedChild returns the currently expanded expander, or nil.
func (n *AccordionNode) ExpandedChild() *ExpanderNode {
	for _, child := range n.children {
		if e, ok := child.(*ExpanderNode); ok && e.Expanded() {
			return e
		}
	}
	return nil
}

func (n *AccordionNode) collapseOthers(keep *ExpanderNode) {
	for _, child := range n.children {
		if e, ok := child.(*ExpanderNode); ok && e != keep {
			e.SetExpanded(false)
		}
	}
}
