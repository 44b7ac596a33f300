// Package bridge exposes a screen's view tree to native code as a JSON
// method channel.
//
// Native code creates views from descriptor payloads, mutates them, and
// pushes model values by calling methods on the "genui/views" channel.
// Views are addressed by their ViewID. User actions flow back on the
// "genui/events" event channel through an EventSink.
package bridge

import (
	"fmt"

	"github.com/go-drift/genui/pkg/builder"
	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/interaction"
	"github.com/go-drift/genui/pkg/platform"
	"github.com/go-drift/genui/pkg/resources"
	"github.com/go-drift/genui/pkg/value"
	"github.com/go-drift/genui/pkg/view"
)

// Channel names.
const (
	ViewsChannel  = "genui/views"
	EventsChannel = "genui/events"
)

// Bridge owns the views created by native code for one screen.
//
// All calls must happen on the UI thread.
type Bridge struct {
	rc         *resources.Context
	builder    *builder.Builder
	dispatcher *interaction.Dispatcher
	views      map[ident.ViewID]view.Node
	channel    *platform.MethodChannel
}

// New returns a bridge that builds views with rc and routes their events
// through d, which must not be nil.
func New(rc *resources.Context, d *interaction.Dispatcher) *Bridge {
	return &Bridge{
		rc:         rc,
		builder:    builder.New(d),
		dispatcher: d,
		views:      make(map[ident.ViewID]view.Node),
	}
}

// Register installs the bridge as the handler of the views channel.
func (b *Bridge) Register() {
	if b.channel != nil {
		return
	}
	b.channel = platform.NewMethodChannel(ViewsChannel)
	b.channel.SetHandler(b.HandleCall)
}

// Unregister removes the bridge from the views channel.
func (b *Bridge) Unregister() {
	if b.channel != nil {
		b.channel.Unregister()
		b.channel = nil
	}
}

// View returns the live view registered under id.
func (b *Bridge) View(id ident.ViewID) (view.Node, bool) {
	n, ok := b.views[id]
	return n, ok
}

// Len returns the number of live views.
func (b *Bridge) Len() int {
	return len(b.views)
}

// HandleCall dispatches a method call from native code.
func (b *Bridge) HandleCall(method string, raw any) (any, error) {
	switch method {
	case "createView":
		return b.createView(raw)
	case "teardown":
		return b.teardown()
	}

	a, err := parseArgs(method, raw)
	if err != nil {
		return nil, err
	}
	switch method {
	case "setAttributes":
		return b.setAttributes(a)
	case "addChild":
		return b.addChild(a)
	case "attach":
		return b.attach(a)
	case "pushValue":
		return b.pushValue(a)
	case "setText":
		return b.setText(a)
	case "setVisible":
		return b.setFlag(a, b.dispatcher.SetViewVisibility)
	case "setEnabled":
		return b.setFlag(a, b.dispatcher.SetViewEnabled)
	case "setChecked":
		return b.setFlag(a, b.dispatcher.SetToggleChecked)
	case "clearContainer":
		return b.clearContainer(a)
	default:
		return nil, fail(method, "", fmt.Errorf("%w: %s", platform.ErrMethodNotFound, method))
	}
}

// createView builds a descriptor subtree and registers every node in it.
// The root is left detached until addChild or attach places it.
func (b *Bridge) createView(raw any) (any, error) {
	d, err := descriptor.FromAny(raw)
	if err != nil {
		return nil, err
	}
	var dup ident.ViewID
	d.Walk(func(child descriptor.Descriptor) {
		if _, taken := b.views[child.ID]; taken && dup == "" {
			dup = child.ID
		}
	})
	if dup != "" {
		return nil, fail("createView", string(dup),
			fmt.Errorf("%w: view %s already exists", platform.ErrInvalidArguments, dup))
	}

	root, err := b.builder.BuildTree(b.rc, d)
	if err != nil {
		return nil, err
	}
	view.Walk(root, func(n view.Node) bool {
		b.track(n)
		return true
	})
	return map[string]any{"id": string(root.ID())}, nil
}

func (b *Bridge) track(n view.Node) {
	id := n.ID()
	b.views[id] = n
	n.OnDispose(func() {
		if b.views[id] == n {
			delete(b.views, id)
		}
	})
}

// setAttributes replaces the attributes of a view. Keys missing from the
// payload revert to their defaults.
func (b *Bridge) setAttributes(a args) (any, error) {
	n, err := b.lookup(a, "id")
	if err != nil {
		return nil, err
	}
	attrs := make(map[string]descriptor.Attribute)
	for key, rawAttr := range platform.ParseMap(a.m["attributes"]) {
		attr, err := descriptor.AttributeFromAny(rawAttr)
		if err != nil {
			return nil, a.invalid(string(n.ID()), fmt.Errorf("attribute %s: %v", key, err))
		}
		attrs[key] = attr
	}
	b.builder.ApplyAttributes(b.rc, n, attrs)
	return nil, nil
}

func (b *Bridge) addChild(a args) (any, error) {
	parent, child, err := b.pair(a)
	if err != nil {
		return nil, err
	}
	if err := b.builder.AddChild(parent, child); err != nil {
		return nil, err
	}
	return nil, nil
}

func (b *Bridge) attach(a args) (any, error) {
	parent, child, err := b.pair(a)
	if err != nil {
		return nil, err
	}
	if err := b.dispatcher.AttachViewToParent(parent, child); err != nil {
		return nil, err
	}
	return nil, nil
}

func (b *Bridge) pushValue(a args) (any, error) {
	model, err := ident.NewModelID(platform.ParseString(a.m["model"]))
	if err != nil {
		return nil, a.invalid("", err)
	}
	v, err := value.FromAny(a.m["value"])
	if err != nil {
		return nil, a.invalid("", err)
	}
	return map[string]any{"applied": b.dispatcher.PushValue(model, v)}, nil
}

func (b *Bridge) setText(a args) (any, error) {
	n, err := b.lookup(a, "id")
	if err != nil {
		return nil, err
	}
	text, ok := a.m["text"].(string)
	if !ok {
		return nil, a.invalid(string(n.ID()), &errors.ParseError{Field: "text", DataType: "string", Got: a.m["text"]})
	}
	return map[string]any{"changed": b.dispatcher.SetViewText(n, text)}, nil
}

func (b *Bridge) setFlag(a args, set func(view.Node, value.Value) bool) (any, error) {
	n, err := b.lookup(a, "id")
	if err != nil {
		return nil, err
	}
	v, err := value.FromAny(a.m["value"])
	if err != nil {
		return nil, a.invalid(string(n.ID()), err)
	}
	return map[string]any{"changed": set(n, v)}, nil
}

func (b *Bridge) clearContainer(a args) (any, error) {
	n, err := b.lookup(a, "id")
	if err != nil {
		return nil, err
	}
	return map[string]any{"cleared": b.dispatcher.ClearContainer(n)}, nil
}

// teardown disposes every view the bridge created.
func (b *Bridge) teardown() (any, error) {
	var roots []view.Node
	for _, n := range b.views {
		if n.Parent() == nil {
			roots = append(roots, n)
		}
	}
	b.dispatcher.Teardown(roots...)
	return nil, nil
}

func (b *Bridge) pair(a args) (parent, child view.Node, err error) {
	if parent, err = b.lookup(a, "parent"); err != nil {
		return nil, nil, err
	}
	if child, err = b.lookup(a, "child"); err != nil {
		return nil, nil, err
	}
	return parent, child, nil
}

func (b *Bridge) lookup(a args, key string) (view.Node, error) {
	id, err := ident.NewViewID(platform.ParseString(a.m[key]))
	if err != nil {
		return nil, a.invalid("", fmt.Errorf("%s: %v", key, err))
	}
	n, ok := b.views[id]
	if !ok || !n.Alive() {
		return nil, fail(a.method, string(id), fmt.Errorf("%w: %s", platform.ErrViewNotFound, id))
	}
	return n, nil
}

type args struct {
	method string
	m      map[string]any
}

func parseArgs(method string, raw any) (args, error) {
	m := platform.ParseMap(raw)
	if m == nil {
		return args{}, fail(method, "", fmt.Errorf("%w: expected an object, got %T", platform.ErrInvalidArguments, raw))
	}
	return args{method: method, m: m}, nil
}

func (a args) invalid(viewID string, err error) error {
	return fail(a.method, viewID, fmt.Errorf("%w: %v", platform.ErrInvalidArguments, err))
}

func fail(method, viewID string, err error) error {
	return errors.ForView("bridge."+method, errors.KindBridge, viewID, err)
}
