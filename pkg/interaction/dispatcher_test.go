package interaction

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/uitest"
	"github.com/go-drift/genui/pkg/value"
	"github.com/go-drift/genui/pkg/view"
)

func newDispatcher() (*Dispatcher, *uitest.Recorder) {
	rec := uitest.NewRecorder()
	return NewDispatcher(rec), rec
}

func TestToggleBoundToAccept_EmitsOnce(t *testing.T) {
	d, rec := newDispatcher()
	toggle := view.NewToggle("accept_toggle", false)
	if err := d.Bind("accept", toggle); err != nil {
		t.Fatal(err)
	}

	toggle.Toggle()

	want := []uitest.Event{{Kind: uitest.ValueChanged, Model: "accept", Value: value.Booleans(true)}}
	if diff := cmp.Diff(want, rec.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestPushFalseToUncheckedCheckbox_NoMutation(t *testing.T) {
	d, rec := newDispatcher()
	box := view.NewToggle("box", true)
	_ = d.Bind("terms", box)

	if n := d.PushValue("terms", value.Booleans(false)); n != 0 {
		t.Errorf("PushValue changed %d views, want 0", n)
	}
	if box.Writes() != 0 {
		t.Errorf("checkbox writes = %d, want 0", box.Writes())
	}
	if len(rec.Events()) != 0 {
		t.Errorf("unexpected events: %v", rec.Events())
	}
}

func TestPushSameTextTwice_OneWrite(t *testing.T) {
	d, _ := newDispatcher()
	input := view.NewTextInput("name")
	_ = d.Bind("name", input)

	d.PushValue("name", value.Strings("Ada"))
	d.PushValue("name", value.Strings("Ada"))

	if input.Writes() != 1 {
		t.Errorf("writes = %d, want 1", input.Writes())
	}
	if input.Value() != "Ada" {
		t.Errorf("value = %q, want %q", input.Value(), "Ada")
	}
}

func TestPushEchoOfUserEdit_KeepsCursor(t *testing.T) {
	d, rec := newDispatcher()
	input := view.NewTextInput("email")
	_ = d.Bind("email", input)

	input.Type("a@b.c")
	d.PushValue("email", rec.Values("email")[0])

	if input.Cursor() != len("a@b.c") || input.Writes() != 0 {
		t.Errorf("cursor = %d writes = %d, echo should not rewrite", input.Cursor(), input.Writes())
	}
}

func TestPushValue_ManyViewsOneModel(t *testing.T) {
	d, _ := newDispatcher()
	input := view.NewTextInput("input")
	label := view.NewText("label")
	_ = d.Bind("city", input)
	_ = d.Bind("city", label)

	if n := d.PushValue("city", value.Strings("Zurich")); n != 2 {
		t.Errorf("PushValue changed %d views, want 2", n)
	}
	if label.Text() != "Zurich" {
		t.Errorf("label = %q", label.Text())
	}
	if n := d.PushValue("city", value.Value{}); n != 2 || input.Value() != "" {
		t.Errorf("empty value should clear both views, changed %d", n)
	}
}

func TestPushValue_WrongTypeReported(t *testing.T) {
	errs := uitest.CaptureErrors(t)
	d, _ := newDispatcher()
	toggle := view.NewToggle("t", false)
	_ = d.Bind("flag", toggle)

	if n := d.PushValue("flag", value.Strings("yes")); n != 0 {
		t.Errorf("changed %d views, want 0", n)
	}
	if errs.Count(errors.KindBinding) != 1 {
		t.Errorf("binding errors = %d, want 1", errs.Count(errors.KindBinding))
	}
}

func TestBindingStates(t *testing.T) {
	d, _ := newDispatcher()
	input := view.NewTextInput("in")

	if got := d.State(input); got != Unbound {
		t.Errorf("state before Bind = %v", got)
	}
	_ = d.Bind("m", input)
	if got := d.State(input); got != Bound {
		t.Errorf("state after Bind = %v", got)
	}
	input.Dispose()
	if got := d.State(input); got != Disposed {
		t.Errorf("state after Dispose = %v", got)
	}
	if d.PushValue("m", value.Strings("late")) != 0 || input.Value() != "" {
		t.Error("disposed view should ignore pushed values")
	}
	if err := d.Bind("m", input); !errors.IsKind(err, errors.KindBinding) {
		t.Errorf("rebinding a disposed view error = %v", err)
	}
	if d.Models() != 0 {
		t.Errorf("Models() = %d, want 0", d.Models())
	}
}

func TestBind_Rejections(t *testing.T) {
	d, _ := newDispatcher()
	input := view.NewTextInput("in")
	_ = d.Bind("a", input)

	tests := []struct {
		name  string
		model ident.ModelID
		node  view.Node
	}{
		{"nil view", "a", nil},
		{"second model", "b", input},
		{"divider", "a", view.NewDivider("div")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.Bind(tt.model, tt.node); !errors.IsKind(err, errors.KindBinding) {
				t.Errorf("Bind error = %v, want binding error", err)
			}
		})
	}
	if err := d.Bind("a", input); err != nil {
		t.Errorf("binding twice to the same model = %v, want nil", err)
	}
}

func TestClearContainer_OneNotificationNoFurtherValues(t *testing.T) {
	d, rec := newDispatcher()
	root := view.NewLinearLayout("root", view.Vertical)
	section := view.NewLinearLayout("section", view.Vertical)
	input := view.NewTextInput("in")
	toggle := view.NewToggle("tg", true)
	_ = section.AddChild(input)
	_ = section.AddChild(toggle)
	_ = root.AddChild(section)
	_ = d.Bind("text", input)
	_ = d.Bind("flag", toggle)

	if !d.ClearContainer(section) {
		t.Fatal("ClearContainer returned false")
	}
	input.Type("ignored")
	toggle.Toggle()

	want := []uitest.Event{{Kind: uitest.ViewContainerCleared, View: "section"}}
	if diff := cmp.Diff(want, rec.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if len(section.Children()) != 0 || input.Alive() {
		t.Error("children should be removed and disposed")
	}
	if d.Models() != 0 {
		t.Errorf("bindings left after clear: %d", d.Models())
	}
	if !section.Alive() || section.Parent() != view.Node(root) {
		t.Error("the cleared container itself must survive")
	}
	if d.ClearContainer(input) {
		t.Error("ClearContainer on a non-container should return false")
	}
}

func TestForwarding_NoDebounce(t *testing.T) {
	d, rec := newDispatcher()
	for range 3 {
		d.OnViewClicked("button")
	}
	d.OnTextLinkClicked(4)
	d.OnValueChanged("free", value.Ints(-1, 99))

	if rec.Count(uitest.ViewClicked) != 3 {
		t.Errorf("clicks = %d, want 3", rec.Count(uitest.ViewClicked))
	}
	if diff := cmp.Diff([]value.Value{value.Ints(-1, 99)}, rec.Values("free")); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestDetach_DropsAndReportsOnce(t *testing.T) {
	errs := uitest.CaptureErrors(t)
	d, rec := newDispatcher()
	d.Detach()

	d.OnViewClicked("a")
	d.OnViewClicked("b")

	if len(rec.Events()) != 0 {
		t.Errorf("detached dispatcher forwarded %v", rec.Events())
	}
	if len(errs.Errors()) != 1 {
		t.Errorf("reported %d errors, want 1", len(errs.Errors()))
	}
}

func TestTeardown(t *testing.T) {
	d, rec := newDispatcher()
	root := view.NewLinearLayout("root", view.Vertical)
	input := view.NewTextInput("in")
	_ = root.AddChild(input)
	orphan := view.NewToggle("orphan", false)
	_ = d.Bind("a", input)
	_ = d.Bind("b", orphan)

	d.Teardown(root)

	if root.Alive() || input.Alive() || orphan.Alive() {
		t.Error("teardown should dispose every view")
	}
	if d.State(input) != Disposed || d.State(orphan) != Disposed {
		t.Error("bindings should be disposed")
	}
	d.OnViewClicked("after")
	if rec.Count(uitest.ViewClicked) != 1 {
		t.Error("delegate should stay attached after teardown")
	}
}

func TestChoiceListBinding(t *testing.T) {
	d, rec := newDispatcher()
	list := view.NewChoiceList("shipping", view.ChoiceListOptions{})
	for _, id := range []ident.ViewID{"standard", "express", "pickup"} {
		_ = list.AddChild(view.NewText(id))
	}
	_ = d.Bind("method", list)

	list.Select(0)
	list.Select(2)
	if diff := cmp.Diff([]value.Value{value.Ints(0), value.Ints(2)}, rec.Values("method")); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	rec.Reset()
	if n := d.PushValue("method", value.Ints(1)); n != 1 {
		t.Errorf("PushValue changed %d views, want 1", n)
	}
	if !list.IsChecked(list.Item(1)) || list.IsChecked(list.Item(2)) {
		t.Error("pushed index not applied")
	}
	if len(rec.Events()) != 0 {
		t.Errorf("programmatic push notified delegate: %v", rec.Events())
	}
	if n := d.PushValue("method", value.Ints(1)); n != 0 {
		t.Error("pushing the current selection should be a no-op")
	}
}

func TestChoiceListPush_DuplicateIndices(t *testing.T) {
	errs := uitest.CaptureErrors(t)
	d, rec := newDispatcher()
	list := view.NewChoiceList("shipping", view.ChoiceListOptions{})
	for _, id := range []ident.ViewID{"standard", "express"} {
		_ = list.AddChild(view.NewText(id))
	}
	_ = d.Bind("method", list)
	list.Select(1)
	rec.Reset()

	if n := d.PushValue("method", value.Ints(1, 1)); n != 0 {
		t.Errorf("PushValue(1, 1) changed %d views, want 0", n)
	}
	if n := d.PushValue("method", value.Ints(0, 0)); n != 1 {
		t.Errorf("PushValue(0, 0) changed %d views, want 1", n)
	}
	if !list.IsChecked(list.Item(0)) || list.IsChecked(list.Item(1)) {
		t.Error("duplicate index not applied as a single choice")
	}
	if got := errs.Errors(); len(got) != 0 {
		t.Errorf("unexpected errors: %v", got)
	}
	if len(rec.Events()) != 0 {
		t.Errorf("programmatic push notified delegate: %v", rec.Events())
	}
}
