package view

import (
	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
)

// TextInputNode is an editable single-line text field.
type TextInputNode struct {
	Base
	value     string
	cursor    int
	hint      string
	inputType int
	focused   bool
	writes    int
	onChange  func(string)
}

// NewTextInput creates a text input node.
func NewTextInput(id ident.ViewID) *TextInputNode {
	n := &TextInputNode{}
	n.init(n, id, descriptor.KindTextInput)
	return n
}

// Value returns the current text.
func (n *TextInputNode) Value() string { return n.value }

// Cursor returns the cursor position in bytes.
func (n *TextInputNode) Cursor() int { return n.cursor }

// Writes counts programmatic SetValue calls.
func (n *TextInputNode) Writes() int { return n.writes }

// SetValue replaces the text programmatically. Like a platform text field,
// this moves the cursor to the start.
func (n *TextInputNode) SetValue(s string) {
	n.value = s
	n.cursor = 0
	n.writes++
}

// Type simulates the user editing the field to s, leaving the cursor at the
// end. The change listener fires on every edit.
func (n *TextInputNode) Type(s string) bool {
	if !n.Alive() || !n.props.Enabled {
		return false
	}
	n.value = s
	n.cursor = len(s)
	if n.onChange != nil {
		n.onChange(s)
	}
	return true
}

// SetOnChange sets the user edit listener.
func (n *TextInputNode) SetOnChange(fn func(string)) { n.onChange = fn }

// Hint returns the placeholder text.
func (n *TextInputNode) Hint() string { return n.hint }

// SetHint sets the placeholder text.
func (n *TextInputNode) SetHint(h string) { n.hint = h }

// InputType returns the keyboard input type.
func (n *TextInputNode) InputType() int { return n.inputType }

// SetInputType sets the keyboard input type.
func (n *TextInputNode) SetInputType(t int) { n.inputType = t }

// Focused reports whether the field requested focus and the keyboard.
func (n *TextInputNode) Focused() bool { return n.focused }

// SetFocused sets whether the field requests focus.
func (n *TextInputNode) SetFocused(f bool) { n.focused = f }

// ToggleNode is a checkbox or switch with optional content on either side.
type ToggleNode struct {
	Base
	checked  bool
	checkbox bool
	left     Node
	right    Node
	writes   int
	onToggle func(bool)
}

// NewToggle creates a toggle node. checkbox selects checkbox over switch styling.
func NewToggle(id ident.ViewID, checkbox bool) *ToggleNode {
	n := &ToggleNode{checkbox: checkbox}
	n.init(n, id, descriptor.KindToggleButton)
	return n
}

// Checked reports the checked state.
func (n *ToggleNode) Checked() bool { return n.checked }

// IsCheckbox reports whether the toggle is styled as a checkbox.
func (n *ToggleNode) IsCheckbox() bool { return n.checkbox }

// Writes counts programmatic SetChecked calls.
func (n *ToggleNode) Writes() int { return n.writes }

// SetChecked sets the state programmatically without notifying the listener.
func (n *ToggleNode) SetChecked(c bool) {
	n.checked = c
	n.writes++
}

// Toggle simulates a user tap: the state flips and the listener fires.
func (n *ToggleNode) Toggle() bool {
	if !n.Alive() || !n.props.Enabled {
		return false
	}
	n.checked = !n.checked
	if n.onToggle != nil {
		n.onToggle(n.checked)
	}
	return true
}

// SetOnToggle sets the user toggle listener.
func (n *ToggleNode) SetOnToggle(fn func(bool)) { n.onToggle = fn }

// SetContent places left and right content views, releasing the previous
// ones. Either may be nil.
func (n *ToggleNode) SetContent(left, right Node) error {
	if err := replaceSlots(n, []Node{n.left, n.right}, []Node{left, right}); err != nil {
		return err
	}
	n.left, n.right = left, right
	return nil
}

// Left returns the left content view.
func (n *ToggleNode) Left() Node { return n.left }

// Right returns the right content view.
func (n *ToggleNode) Right() Node { return n.right }

func (n *ToggleNode) childNodes() []Node { return nonNil(n.left, n.right) }

func nonNil(nodes ...Node) []Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
