package view

import (
	"fmt"
	"strings"

	"github.com/go-drift/genui/pkg/resources"
)

// Snapshot is a plain, comparable description of a node's visible state.
// Two nodes with equal snapshots render identically.
type Snapshot struct {
	ID                 string
	Kind               string
	Slot               string
	Padding            [4]int
	Layout             LayoutParams
	Background         string
	ContentDescription string
	Visible            bool
	Enabled            bool

	Text        string
	Appearance  string
	Gravity     int
	Value       string
	Hint        string
	Checked     bool
	Expanded    bool
	Image       string
	Orientation Orientation

	Children []Snapshot
}

// Snap captures n and its descendants.
func Snap(n Node) Snapshot {
	p := n.Props()
	s := Snapshot{
		ID:                 string(n.ID()),
		Kind:               n.Kind().String(),
		Slot:               p.Slot,
		Padding:            [4]int{p.PaddingStart, p.PaddingTop, p.PaddingEnd, p.PaddingBottom},
		Layout:             p.Layout,
		Background:         describeDrawable(p.Background),
		ContentDescription: p.ContentDescription,
		Visible:            p.Visible,
		Enabled:            p.Enabled,
	}

	switch v := n.(type) {
	case *TextNode:
		s.Text = v.Text()
		s.Gravity = v.Gravity()
		if ta := v.Appearance(); ta != nil {
			s.Appearance = ta.Name
		}
	case *TextInputNode:
		s.Value = v.Value()
		s.Hint = v.Hint()
	case *ToggleNode:
		s.Checked = v.Checked()
	case *ExpanderNode:
		s.Expanded = v.Expanded()
	case *ImageNode:
		if img := v.Image(); img != nil {
			b := img.Bounds()
			s.Image = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
			if v.Tinted() {
				s.Image += " tinted"
			}
		}
	case *LinearLayoutNode:
		s.Orientation = v.Orientation()
	case *AccordionNode:
		s.Orientation = v.Orientation()
	}

	for _, child := range childNodes(n) {
		s.Children = append(s.Children, Snap(child))
	}
	return s
}

// Summary returns a one-line description of the node's own state.
func (s Snapshot) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s #%s", s.Kind, s.ID)
	if s.Slot != "" {
		fmt.Fprintf(&sb, " slot=%s", s.Slot)
	}
	if s.Text != "" {
		fmt.Fprintf(&sb, " text=%q", s.Text)
	}
	if s.Appearance != "" {
		fmt.Fprintf(&sb, " style=%s", s.Appearance)
	}
	if s.Value != "" || s.Hint != "" {
		fmt.Fprintf(&sb, " value=%q hint=%q", s.Value, s.Hint)
	}
	if s.Kind == "ToggleButton" {
		fmt.Fprintf(&sb, " checked=%t", s.Checked)
	}
	if s.Kind == "VerticalExpander" {
		fmt.Fprintf(&sb, " expanded=%t", s.Expanded)
	}
	if s.Image != "" {
		fmt.Fprintf(&sb, " image=%s", s.Image)
	}
	if s.Background != "" {
		fmt.Fprintf(&sb, " bg=%s", s.Background)
	}
	if s.Padding != [4]int{} {
		fmt.Fprintf(&sb, " padding=%v", s.Padding)
	}
	if !s.Visible {
		sb.WriteString(" hidden")
	}
	if !s.Enabled {
		sb.WriteString(" disabled")
	}
	return sb.String()
}

func describeDrawable(d *resources.Drawable) string {
	if d == nil {
		return ""
	}
	if d.Shape != nil {
		sh := d.Shape
		out := "shape"
		if sh.HasFill {
			out += " fill=" + sh.Fill.String()
		}
		if sh.CornerRadius > 0 {
			out += fmt.Sprintf(" radius=%d", sh.CornerRadius)
		}
		if sh.HasStroke {
			out += fmt.Sprintf(" stroke=%s/%d", sh.Stroke, sh.StrokeWidth)
		}
		return out
	}
	if d.Image != nil {
		b := d.Image.Bounds()
		return fmt.Sprintf("bitmap %dx%d", b.Dx(), b.Dy())
	}
	return d.Ref.String()
}
