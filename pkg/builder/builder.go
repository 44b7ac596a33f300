// Package builder materializes view descriptors into live view nodes.
//
// Build turns one descriptor plus its already-built children into a node
// tagged with the descriptor's identifier. BuildTree does the same for a
// whole descriptor tree, children first. Attribute application is
// idempotent, so ApplyAttributes can re-apply a changed descriptor to an
// existing node without rebuilding its subtree.
//
// Resource failures (unknown colors, missing drawables, unknown text
// appearances) are reported through the errors package and leave the
// affected property unset. Malformed descriptors are rejected with a
// KindDescriptor error and nothing is built.
package builder

import (
	"fmt"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/interaction"
	"github.com/go-drift/genui/pkg/resources"
	"github.com/go-drift/genui/pkg/view"
)

// Builder builds nodes and wires them to a dispatcher.
//
// Builder is not safe for concurrent use; it belongs to the UI thread.
type Builder struct {
	dispatcher *interaction.Dispatcher
	requests   map[view.Node]map[string]*request
}

// New returns a builder that binds inputs and forwards clicks to d.
// d may be nil, in which case nodes are built without any event wiring.
func New(d *interaction.Dispatcher) *Builder {
	return &Builder{
		dispatcher: d,
		requests:   make(map[view.Node]map[string]*request),
	}
}

// Dispatcher returns the dispatcher nodes are wired to, or nil.
func (b *Builder) Dispatcher() *interaction.Dispatcher {
	return b.dispatcher
}

// Build constructs a single node for d, applies its attributes, and attaches
// children. Containers append children in order; expanders and toggles place
// each child in the slot named by its slot attribute. If Build fails the
// children are left detached and alive.
func (b *Builder) Build(rc *resources.Context, d descriptor.Descriptor, children ...view.Node) (view.Node, error) {
	const op = "builder.Build"
	if _, err := ident.NewViewID(string(d.ID)); err != nil {
		return nil, errors.New(op, errors.KindDescriptor, err)
	}

	n, err := b.construct(d)
	if err != nil {
		return nil, errors.ForView(op, errors.KindDescriptor, string(d.ID), err)
	}
	b.ApplyAttributes(rc, n, d.Attributes)
	if err := b.wire(d, n); err != nil {
		n.Dispose()
		return nil, err
	}
	if err := attach(n, children); err != nil {
		if c, ok := n.(view.Container); ok {
			c.RemoveAll()
		}
		n.Dispose()
		return nil, errors.ForView(op, errors.KindDescriptor, string(d.ID), err)
	}
	return n, nil
}

// BuildTree validates the whole tree, then builds it bottom-up. If any node
// fails, everything built so far is disposed and the error is returned.
func (b *Builder) BuildTree(rc *resources.Context, d descriptor.Descriptor) (view.Node, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.ForView("builder.BuildTree", errors.KindDescriptor, string(d.ID), err)
	}
	return b.buildTree(rc, d)
}

func (b *Builder) buildTree(rc *resources.Context, d descriptor.Descriptor) (view.Node, error) {
	children := make([]view.Node, 0, len(d.Children))
	for _, cd := range d.Children {
		child, err := b.buildTree(rc, cd)
		if err != nil {
			disposeAll(children)
			return nil, err
		}
		children = append(children, child)
	}
	n, err := b.Build(rc, d, children...)
	if err != nil {
		disposeAll(children)
		return nil, err
	}
	return n, nil
}

// AddChild appends child to container.
func (b *Builder) AddChild(container, child view.Node) error {
	c, ok := container.(view.Container)
	if !ok {
		return errors.ForView("builder.AddChild", errors.KindDescriptor, nodeID(container), view.ErrNotContainer)
	}
	if err := c.AddChild(child); err != nil {
		return errors.ForView("builder.AddChild", errors.KindDescriptor, nodeID(container), err)
	}
	return nil
}

func (b *Builder) construct(d descriptor.Descriptor) (view.Node, error) {
	switch d.Kind {
	case descriptor.KindText:
		return view.NewText(d.ID), nil
	case descriptor.KindImage:
		return view.NewImage(d.ID), nil
	case descriptor.KindDivider:
		return view.NewDivider(d.ID), nil
	case descriptor.KindLinearLayout:
		return view.NewLinearLayout(d.ID, view.Vertical), nil
	case descriptor.KindTextInput:
		return view.NewTextInput(d.ID), nil
	case descriptor.KindToggleButton:
		return view.NewToggle(d.ID, d.Bool(descriptor.KeyCheckbox, true)), nil
	case descriptor.KindVerticalExpander:
		return view.NewExpander(d.ID), nil
	case descriptor.KindVerticalExpanderAccordion:
		return view.NewAccordion(d.ID, view.Vertical), nil
	case descriptor.KindChoiceList:
		return view.NewChoiceList(d.ID, view.ChoiceListOptions{
			AddButtonText: d.Str(descriptor.KeyAddButtonText, ""),
			HasEditColumn: d.Bool(descriptor.KeyHasEditButton, false),
		}), nil
	}
	return nil, fmt.Errorf("unknown view kind %s", d.Kind)
}

// attach places children into n.
func attach(n view.Node, children []view.Node) error {
	if len(children) == 0 {
		return nil
	}
	switch v := n.(type) {
	case view.Container:
		for _, child := range children {
			if err := v.AddChild(child); err != nil {
				return fmt.Errorf("child %s: %w", child.ID(), err)
			}
		}
		return nil
	case *view.ExpanderNode:
		slots, err := bySlot(children, descriptor.SlotTitle, descriptor.SlotCollapsed, descriptor.SlotExpanded)
		if err != nil {
			return err
		}
		return v.SetSlots(slots[descriptor.SlotTitle], slots[descriptor.SlotCollapsed], slots[descriptor.SlotExpanded])
	case *view.ToggleNode:
		slots, err := bySlot(children, descriptor.SlotLeft, descriptor.SlotRight)
		if err != nil {
			return err
		}
		return v.SetContent(slots[descriptor.SlotLeft], slots[descriptor.SlotRight])
	}
	return fmt.Errorf("%s takes no children", n.Kind())
}

func bySlot(children []view.Node, allowed ...string) (map[string]view.Node, error) {
	out := make(map[string]view.Node, len(allowed))
	for _, child := range children {
		slot := child.Props().Slot
		ok := false
		for _, a := range allowed {
			ok = ok || slot == a
		}
		if !ok {
			return nil, fmt.Errorf("child %s has slot %q, want one of %v", child.ID(), slot, allowed)
		}
		if _, dup := out[slot]; dup {
			return nil, fmt.Errorf("slot %q filled twice", slot)
		}
		out[slot] = child
	}
	return out, nil
}

// wire binds models and forwards user actions to the dispatcher.
func (b *Builder) wire(d descriptor.Descriptor, n view.Node) error {
	var model ident.ModelID
	if s := d.Str(descriptor.KeyModel, ""); s != "" {
		m, err := ident.NewModelID(s)
		if err != nil {
			return errors.ForView("builder.Build", errors.KindDescriptor, string(d.ID), fmt.Errorf("model: %w", err))
		}
		model = m
	} else if d.Kind == descriptor.KindTextInput || d.Kind == descriptor.KindToggleButton {
		return errors.ForView("builder.Build", errors.KindDescriptor, string(d.ID), fmt.Errorf("%s needs a model", d.Kind))
	}

	disp := b.dispatcher
	if disp == nil {
		return nil
	}
	if model != "" {
		if err := disp.Bind(model, n); err != nil {
			return err
		}
	}

	switch v := n.(type) {
	case *view.TextNode:
		v.SetOnLink(disp.OnTextLinkClicked)
	case *view.ChoiceListNode:
		v.SetOnEdit(func(i int) {
			if item := v.Item(i); item != nil {
				disp.OnViewClicked(item.ID())
			}
		})
		v.SetOnAdd(func() { disp.OnViewClicked(v.ID()) })
	}
	return nil
}

func disposeAll(nodes []view.Node) {
	for _, n := range nodes {
		n.Dispose()
	}
}

func nodeID(n view.Node) string {
	if n == nil {
		return ""
	}
	return string(n.ID())
}
