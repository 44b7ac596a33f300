package interaction

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/genui/pkg/uitest"
	"github.com/go-drift/genui/pkg/value"
	"github.com/go-drift/genui/pkg/view"
)

func TestListPopup_IndicesThenNames(t *testing.T) {
	d, rec := newDispatcher()
	items := []PopupItem{
		{Name: "Cards", Type: PopupItemHeader},
		{Name: "Visa"},
		{Name: "Amex", Type: PopupItemDisabled},
		{Name: "Mastercard"},
	}
	p := d.ShowListPopup(items, []int{1}, true, "card_indices", "card_names")

	if err := p.Select(2); err == nil {
		t.Error("disabled item should not be selectable")
	}
	if err := p.Select(1, 3); err != nil {
		t.Fatal(err)
	}

	want := []uitest.Event{
		{Kind: uitest.ValueChanged, Model: "card_indices", Value: value.Ints(1, 3)},
		{Kind: uitest.ValueChanged, Model: "card_names", Value: value.Strings("Visa", "Mastercard")},
	}
	if diff := cmp.Diff(want, rec.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if p.Open() || p.Select(1) != ErrPopupClosed {
		t.Error("popup should be closed after selection")
	}
}

func TestListPopup_SingleChoiceWithoutNames(t *testing.T) {
	d, rec := newDispatcher()
	p := d.ShowListPopup([]PopupItem{{Name: "a"}, {Name: "b"}}, nil, false, "idx", "")

	if err := p.Select(0, 1); err == nil {
		t.Error("single-choice popup accepted two selections")
	}
	if err := p.Select(1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uitest.Event{{Kind: uitest.ValueChanged, Model: "idx", Value: value.Ints(1)}}, rec.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestCalendarPopup(t *testing.T) {
	d, rec := newDispatcher()
	lo := value.DateTimes(value.DateTime{Year: 2024, Month: 1, Day: 1})
	hi := value.DateTimes(value.DateTime{Year: 2024, Month: 12, Day: 31})

	if _, ok := d.ShowCalendarPopup(value.Strings("x"), lo, hi, "date"); ok {
		t.Error("non-date initial value should be rejected")
	}
	if _, ok := d.ShowCalendarPopup(value.Value{}, lo, value.Value{}, "date"); ok {
		t.Error("missing max should be rejected")
	}

	p, ok := d.ShowCalendarPopup(value.Value{}, lo, hi, "date")
	if !ok {
		t.Fatal("valid popup rejected")
	}
	if _, has := p.Initial(); has {
		t.Error("popup should have no initial date")
	}
	if err := p.Pick(value.DateTime{Year: 2025, Month: 1, Day: 1}); err == nil {
		t.Error("date after max should be rejected")
	}
	picked := value.DateTime{Year: 2024, Month: 6, Day: 15}
	if err := p.Pick(picked); err != nil {
		t.Fatal(err)
	}

	p2, _ := d.ShowCalendarPopup(value.DateTimes(picked), lo, hi, "date")
	if err := p2.Clear(); err != nil {
		t.Fatal(err)
	}

	want := []value.Value{value.DateTimes(picked), {}}
	if diff := cmp.Diff(want, rec.Values("date")); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestGenericPopup_DismissOnce(t *testing.T) {
	d, rec := newDispatcher()
	content := view.NewLinearLayout("popup_content", view.Vertical)
	input := view.NewTextInput("popup_input")
	_ = content.AddChild(input)
	_ = d.Bind("note", input)

	p := d.ShowGenericPopup(content, "details")
	p.Dismiss()
	p.Dismiss()

	want := []uitest.Event{{Kind: uitest.GenericPopupDismissed, Popup: "details"}}
	if diff := cmp.Diff(want, rec.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if content.Alive() || d.State(input) != Disposed {
		t.Error("dismissing should dispose the popup content")
	}
}
