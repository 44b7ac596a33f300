package builder

import (
	"fmt"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/resources"
	"github.com/go-drift/genui/pkg/view"
)

// ApplyAttributes sets every attribute-derived property of n from attrs.
// Properties whose key is absent return to their defaults, so applying the
// same attributes twice yields the same visible state, and applying a changed
// set is equivalent to rebuilding the node. Model values and user input are
// not attribute-derived and are left alone.
func (b *Builder) ApplyAttributes(rc *resources.Context, n view.Node, attrs map[string]descriptor.Attribute) {
	if n == nil || !n.Alive() {
		return
	}
	rc = orDefault(rc)
	a := attrSet{id: string(n.ID()), m: attrs}

	p := n.Props()
	p.PaddingStart = rc.Px(a.integer(descriptor.KeyPaddingStart, 0))
	p.PaddingTop = rc.Px(a.integer(descriptor.KeyPaddingTop, 0))
	p.PaddingEnd = rc.Px(a.integer(descriptor.KeyPaddingEnd, 0))
	p.PaddingBottom = rc.Px(a.integer(descriptor.KeyPaddingBottom, 0))
	p.ContentDescription = a.str(descriptor.KeyContentDescription, "")
	p.Visible = a.boolean(descriptor.KeyVisible, true)
	p.Enabled = a.boolean(descriptor.KeyEnabled, true)
	p.Slot = a.str(descriptor.KeySlot, "")
	p.Layout = layoutParams(rc, n.Kind(), a)

	b.applyBackground(rc, n, a)
	b.applyClickable(n, a.boolean(descriptor.KeyClickable, false))

	switch v := n.(type) {
	case *view.TextNode:
		if text := a.str(descriptor.KeyText, ""); v.Text() != text {
			v.SetText(text)
		}
		v.SetAppearance(textAppearance(a))
		v.SetGravity(a.integer(descriptor.KeyTextGravity, 0))
	case *view.ImageNode:
		b.applyImage(rc, v, a)
	case *view.TextInputNode:
		v.SetHint(a.str(descriptor.KeyHint, ""))
		v.SetInputType(a.integer(descriptor.KeyInputType, 0))
		v.SetFocused(a.boolean(descriptor.KeyFocus, false))
	case *view.LinearLayoutNode:
		v.SetOrientation(orientation(a))
	case *view.AccordionNode:
		v.SetOrientation(orientation(a))
	case *view.ExpanderNode:
		v.SetChevron(chevronStyle(a))
	case *view.ChoiceListNode:
		if multiple := a.boolean(descriptor.KeyMultiple, false); multiple != v.AllowsMultipleChoices() {
			if err := v.SetAllowMultipleChoices(multiple); err != nil {
				a.report(errors.KindDescriptor, err)
			}
		}
		v.SetSpacing(rc.PxF(a.number(descriptor.KeyRowSpacing, 0)), rc.PxF(a.number(descriptor.KeyColumnSpacing, 0)))
	}
}

// orDefault returns rc, or a density 1 light context if rc is nil.
func orDefault(rc *resources.Context) *resources.Context {
	if rc == nil {
		return resources.NewContext(1, nil)
	}
	return rc
}

func layoutParams(rc *resources.Context, k descriptor.Kind, a attrSet) view.LayoutParams {
	width := descriptor.WrapContent
	if k == descriptor.KindDivider {
		width = descriptor.MatchParent
	}
	return view.LayoutParams{
		Width:        rc.LayoutSize(a.integer(descriptor.KeyWidth, width)),
		Height:       rc.LayoutSize(a.integer(descriptor.KeyHeight, descriptor.WrapContent)),
		Weight:       a.number(descriptor.KeyWeight, 0),
		MarginStart:  rc.Px(a.integer(descriptor.KeyMarginStart, 0)),
		MarginTop:    rc.Px(a.integer(descriptor.KeyMarginTop, 0)),
		MarginEnd:    rc.Px(a.integer(descriptor.KeyMarginEnd, 0)),
		MarginBottom: rc.Px(a.integer(descriptor.KeyMarginBottom, 0)),
		Gravity:      a.integer(descriptor.KeyGravity, 0),
		MinWidth:     rc.Px(a.integer(descriptor.KeyMinWidth, 0)),
		MinHeight:    rc.Px(a.integer(descriptor.KeyMinHeight, 0)),
	}
}

func (b *Builder) applyClickable(n view.Node, clickable bool) {
	c, ok := n.(interface{ SetOnClick(func()) })
	if !ok {
		return
	}
	if !clickable || b.dispatcher == nil {
		c.SetOnClick(nil)
		return
	}
	id, disp := n.ID(), b.dispatcher
	c.SetOnClick(func() { disp.OnViewClicked(id) })
}

func textAppearance(a attrSet) *resources.TextAppearance {
	name := a.str(descriptor.KeyTextAppearance, "")
	if name == "" {
		return nil
	}
	ta, ok := resources.LookupTextAppearance(name)
	if !ok {
		a.report(errors.KindResource, fmt.Errorf("unknown text appearance %q", name))
		return nil
	}
	return &ta
}

func orientation(a attrSet) view.Orientation {
	attr, ok := a.m[descriptor.KeyOrientation]
	if !ok {
		return view.Vertical
	}
	if s, ok := attr.AsString(); ok {
		switch s {
		case "vertical":
			return view.Vertical
		case "horizontal":
			return view.Horizontal
		}
	}
	if n, ok := attr.AsInt(); ok && (n == int(view.Horizontal) || n == int(view.Vertical)) {
		return view.Orientation(n)
	}
	a.report(errors.KindDescriptor, fmt.Errorf("attribute %s: bad orientation %s", descriptor.KeyOrientation, attr))
	return view.Vertical
}

func chevronStyle(a attrSet) view.ChevronStyle {
	attr, ok := a.m[descriptor.KeyChevronStyle]
	if !ok {
		return view.ChevronNotSet
	}
	if s, ok := attr.AsString(); ok {
		switch s {
		case "not_set":
			return view.ChevronNotSet
		case "always":
			return view.ChevronAlways
		case "never":
			return view.ChevronNever
		}
	}
	if n, ok := attr.AsInt(); ok && n >= int(view.ChevronNotSet) && n <= int(view.ChevronNever) {
		return view.ChevronStyle(n)
	}
	a.report(errors.KindDescriptor, fmt.Errorf("attribute %s: bad chevron style %s", descriptor.KeyChevronStyle, attr))
	return view.ChevronNotSet
}

// attrSet reads typed attributes and reports type mismatches. A mismatched
// attribute is treated as absent.
type attrSet struct {
	id string
	m  map[string]descriptor.Attribute
}

func (a attrSet) report(kind errors.ErrorKind, err error) {
	errors.Report(errors.ForView("builder.ApplyAttributes", kind, a.id, err))
}

func (a attrSet) mismatch(key string, want descriptor.AttrType, got descriptor.Attribute) {
	a.report(errors.KindDescriptor, fmt.Errorf("attribute %s: want %s, got %s", key, want, got))
}

func (a attrSet) boolean(key string, def bool) bool {
	attr, ok := a.m[key]
	if !ok {
		return def
	}
	if v, ok := attr.AsBool(); ok {
		return v
	}
	a.mismatch(key, descriptor.AttrBool, attr)
	return def
}

func (a attrSet) number(key string, def float64) float64 {
	attr, ok := a.m[key]
	if !ok {
		return def
	}
	if v, ok := attr.AsNumber(); ok {
		return v
	}
	a.mismatch(key, descriptor.AttrNumber, attr)
	return def
}

func (a attrSet) integer(key string, def int) int {
	attr, ok := a.m[key]
	if !ok {
		return def
	}
	if v, ok := attr.AsInt(); ok {
		return v
	}
	a.mismatch(key, descriptor.AttrNumber, attr)
	return def
}

func (a attrSet) str(key string, def string) string {
	attr, ok := a.m[key]
	if !ok {
		return def
	}
	if v, ok := attr.AsString(); ok {
		return v
	}
	a.mismatch(key, descriptor.AttrString, attr)
	return def
}
