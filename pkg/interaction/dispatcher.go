package interaction

import (
	"fmt"
	"slices"

	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/value"
	"github.com/go-drift/genui/pkg/view"
)

// BindingState is the lifecycle state of a bound view.
type BindingState int

const (
	Unbound BindingState = iota
	Bound
	Disposed
)

func (s BindingState) String() string {
	switch s {
	case Bound:
		return "bound"
	case Disposed:
		return "disposed"
	default:
		return "unbound"
	}
}

type binding struct {
	model ident.ModelID
	node  view.Node
	state BindingState
}

// Dispatcher routes events between views and a Delegate.
type Dispatcher struct {
	delegate Delegate
	bindings map[ident.ModelID][]*binding
	byNode   map[view.Node]*binding
	detached bool
	dropped  bool
}

// NewDispatcher returns a dispatcher forwarding to delegate.
func NewDispatcher(delegate Delegate) *Dispatcher {
	return &Dispatcher{
		delegate: delegate,
		bindings: make(map[ident.ModelID][]*binding),
		byNode:   make(map[view.Node]*binding),
	}
}

// Bind associates n with model. Text inputs report user edits as a string
// singleton, toggles as a boolean singleton, and choice lists as the checked
// indices. Text views are display-only. A view can be bound to one model.
func (d *Dispatcher) Bind(model ident.ModelID, n view.Node) error {
	if n == nil {
		return errors.New("interaction.Bind", errors.KindBinding, fmt.Errorf("nil view for model %s", model))
	}
	if !n.Alive() {
		return errors.ForView("interaction.Bind", errors.KindBinding, string(n.ID()), view.ErrDisposed)
	}
	if b, ok := d.byNode[n]; ok {
		if b.model == model {
			return nil
		}
		return errors.ForView("interaction.Bind", errors.KindBinding, string(n.ID()),
			fmt.Errorf("already bound to model %s", b.model))
	}

	switch v := n.(type) {
	case *view.TextInputNode:
		v.SetOnChange(func(s string) {
			d.OnValueChanged(model, value.Strings(s))
		})
	case *view.ToggleNode:
		v.SetOnToggle(func(checked bool) {
			d.OnValueChanged(model, value.Booleans(checked))
		})
	case *view.ChoiceListNode:
		v.SetOnChoice(func() {
			d.OnValueChanged(model, value.Ints(checkedIndices(v)...))
		})
	case *view.TextNode:
	default:
		return errors.ForView("interaction.Bind", errors.KindBinding, string(n.ID()),
			fmt.Errorf("%s views cannot be bound", n.Kind()))
	}

	b := &binding{model: model, node: n, state: Bound}
	d.bindings[model] = append(d.bindings[model], b)
	d.byNode[n] = b
	n.OnDispose(func() { d.release(b) })
	return nil
}

// release moves b to Disposed and forgets it.
func (d *Dispatcher) release(b *binding) {
	if b.state == Disposed {
		return
	}
	b.state = Disposed
	delete(d.byNode, b.node)
	list := slices.DeleteFunc(d.bindings[b.model], func(x *binding) bool { return x == b })
	if len(list) == 0 {
		delete(d.bindings, b.model)
	} else {
		d.bindings[b.model] = list
	}
}

// State returns the binding state of n.
func (d *Dispatcher) State(n view.Node) BindingState {
	if b, ok := d.byNode[n]; ok {
		return b.state
	}
	if n != nil && !n.Alive() {
		return Disposed
	}
	return Unbound
}

// Bound returns the live views bound to model.
func (d *Dispatcher) Bound(model ident.ModelID) []view.Node {
	var out []view.Node
	for _, b := range d.bindings[model] {
		out = append(out, b.node)
	}
	return out
}

// Models returns the number of models with at least one live binding.
func (d *Dispatcher) Models() int {
	return len(d.bindings)
}

// PushValue applies v to every view bound to model and returns the number of
// views that changed. Views already showing v are left untouched, so a text
// input keeps its cursor. Disposed views are skipped. A value the view cannot
// display is reported and skipped.
func (d *Dispatcher) PushValue(model ident.ModelID, v value.Value) int {
	changed := 0
	for _, b := range slices.Clone(d.bindings[model]) {
		if b.state != Bound || !b.node.Alive() {
			continue
		}
		ok, err := applyValue(b.node, v)
		if err != nil {
			errors.Report(errors.ForView("interaction.PushValue", errors.KindBinding, string(b.node.ID()),
				fmt.Errorf("model %s: %w", model, err)))
			continue
		}
		if ok {
			changed++
		}
	}
	return changed
}

func applyValue(n view.Node, v value.Value) (bool, error) {
	switch node := n.(type) {
	case *view.TextInputNode:
		s, err := displayString(v)
		if err != nil {
			return false, err
		}
		if node.Value() == s {
			return false, nil
		}
		node.SetValue(s)
		return true, nil
	case *view.TextNode:
		s, err := displayString(v)
		if err != nil {
			return false, err
		}
		if node.Text() == s {
			return false, nil
		}
		node.SetText(s)
		return true, nil
	case *view.ToggleNode:
		checked, ok := v.BoolSingleton()
		if !ok {
			return false, fmt.Errorf("toggle needs a single boolean, got %s", v)
		}
		if node.Checked() == checked {
			return false, nil
		}
		node.SetChecked(checked)
		return true, nil
	case *view.ChoiceListNode:
		if !v.IsEmpty() && v.Ints == nil {
			return false, fmt.Errorf("choice list needs indices, got %s", v)
		}
		want := slices.Clone(v.Ints)
		slices.Sort(want)
		want = slices.Compact(want)
		if slices.Equal(checkedIndices(node), want) {
			return false, nil
		}
		return true, setCheckedIndices(node, want)
	}
	return false, fmt.Errorf("%s views cannot display values", n.Kind())
}

// displayString returns the text shown for a string singleton. An empty
// value clears the text.
func displayString(v value.Value) (string, error) {
	if v.IsEmpty() {
		return "", nil
	}
	if s, ok := v.StringSingleton(); ok {
		return s, nil
	}
	return "", fmt.Errorf("text needs a single string, got %s", v)
}

func checkedIndices(list *view.ChoiceListNode) []int {
	var out []int
	for i := range list.ItemCount() {
		if list.IsChecked(list.Item(i)) {
			out = append(out, i)
		}
	}
	return out
}

func setCheckedIndices(list *view.ChoiceListNode, indices []int) error {
	if len(indices) > 1 && !list.AllowsMultipleChoices() {
		return fmt.Errorf("choice list allows a single choice, got %d", len(indices))
	}
	for _, i := range indices {
		if list.Item(i) == nil {
			return fmt.Errorf("choice index %d out of range", i)
		}
	}
	for i := range list.ItemCount() {
		list.SetChecked(list.Item(i), slices.Contains(indices, i))
	}
	return nil
}

// OnValueChanged forwards a user edit to the delegate verbatim.
func (d *Dispatcher) OnValueChanged(model ident.ModelID, v value.Value) {
	if d.forward("OnValueChanged") {
		d.delegate.OnValueChanged(model, v)
	}
}

// OnViewClicked forwards a click to the delegate.
func (d *Dispatcher) OnViewClicked(id ident.ViewID) {
	if d.forward("OnViewClicked") {
		d.delegate.OnViewClicked(id)
	}
}

// OnTextLinkClicked forwards a link tap to the delegate.
func (d *Dispatcher) OnTextLinkClicked(link int) {
	if d.forward("OnTextLinkClicked") {
		d.delegate.OnTextLinkClicked(link)
	}
}

// OnGenericPopupDismissed forwards a popup dismissal to the delegate.
func (d *Dispatcher) OnGenericPopupDismissed(id ident.PopupID) {
	if d.forward("OnGenericPopupDismissed") {
		d.delegate.OnGenericPopupDismissed(id)
	}
}

// OnViewContainerCleared forwards a container clear to the delegate.
func (d *Dispatcher) OnViewContainerCleared(id ident.ViewID) {
	if d.forward("OnViewContainerCleared") {
		d.delegate.OnViewContainerCleared(id)
	}
}

// forward reports whether a notification can reach the delegate. After
// Detach the first dropped notification is reported; later ones are not.
func (d *Dispatcher) forward(op string) bool {
	if !d.detached && d.delegate != nil {
		return true
	}
	if !d.dropped {
		d.dropped = true
		errors.Report(errors.New("interaction."+op, errors.KindBinding,
			fmt.Errorf("dispatcher has no delegate, dropping notifications")))
	}
	return false
}

// Detach disconnects the delegate. Later notifications are dropped.
func (d *Dispatcher) Detach() {
	d.detached = true
}

// Detached reports whether Detach was called.
func (d *Dispatcher) Detached() bool {
	return d.detached
}

// Teardown disposes roots and every remaining bound view. Every binding
// ends up Disposed. The delegate stays attached.
func (d *Dispatcher) Teardown(roots ...view.Node) {
	for _, root := range roots {
		if root != nil {
			root.Dispose()
		}
	}
	for _, list := range d.bindings {
		for _, b := range slices.Clone(list) {
			b.node.Dispose()
			d.release(b)
		}
	}
}
