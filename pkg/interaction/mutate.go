package interaction

import (
	"fmt"

	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/value"
	"github.com/go-drift/genui/pkg/view"
)

// SetViewText sets the text of a text view or text input. It returns false
// for other kinds and for disposed views. A text input already showing text
// is left untouched so its cursor does not move.
func (d *Dispatcher) SetViewText(n view.Node, text string) bool {
	if n == nil || !n.Alive() {
		return false
	}
	switch v := n.(type) {
	case *view.TextNode:
		if v.Text() != text {
			v.SetText(text)
		}
		return true
	case *view.TextInputNode:
		if v.Value() != text {
			v.SetValue(text)
		}
		return true
	}
	return false
}

// SetViewVisibility shows or hides n. Values other than a boolean singleton
// are ignored and return false.
func (d *Dispatcher) SetViewVisibility(n view.Node, visible value.Value) bool {
	b, ok := visible.BoolSingleton()
	if !ok || n == nil || !n.Alive() {
		return false
	}
	n.Props().Visible = b
	return true
}

// SetViewEnabled enables or disables n. Values other than a boolean
// singleton are ignored and return false.
func (d *Dispatcher) SetViewEnabled(n view.Node, enabled value.Value) bool {
	b, ok := enabled.BoolSingleton()
	if !ok || n == nil || !n.Alive() {
		return false
	}
	n.Props().Enabled = b
	return true
}

// SetToggleChecked sets the state of a toggle without notifying the
// delegate. It returns false if n is not a live toggle or checked is not a
// boolean singleton.
func (d *Dispatcher) SetToggleChecked(n view.Node, checked value.Value) bool {
	t, ok := n.(*view.ToggleNode)
	if !ok || !t.Alive() {
		return false
	}
	b, ok := checked.BoolSingleton()
	if !ok {
		return false
	}
	if t.Checked() != b {
		t.SetChecked(b)
	}
	return true
}

// ClearContainer removes and disposes every child of container, dropping
// the bindings of the removed views, then notifies the delegate exactly once.
// It returns false if container is not a live container.
func (d *Dispatcher) ClearContainer(container view.Node) bool {
	c, ok := container.(view.Container)
	if !ok || !c.Alive() {
		return false
	}
	for _, child := range c.RemoveAll() {
		child.Dispose()
	}
	d.OnViewContainerCleared(c.ID())
	return true
}

// AttachViewToParent appends child to parent.
func (d *Dispatcher) AttachViewToParent(parent, child view.Node) error {
	if child == nil {
		return errors.New("interaction.AttachViewToParent", errors.KindBinding, fmt.Errorf("nil child"))
	}
	c, ok := parent.(view.Container)
	if !ok {
		return errors.ForView("interaction.AttachViewToParent", errors.KindBinding, idOf(parent), view.ErrNotContainer)
	}
	if err := c.AddChild(child); err != nil {
		return errors.ForView("interaction.AttachViewToParent", errors.KindBinding, string(child.ID()), err)
	}
	return nil
}

func idOf(n view.Node) string {
	if n == nil {
		return ""
	}
	return string(n.ID())
}
