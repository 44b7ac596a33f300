package interaction

import (
	stderrors "errors"
	"fmt"
	"slices"

	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/value"
	"github.com/go-drift/genui/pkg/view"
)

// ErrPopupClosed is returned when interacting with a popup that was already
// closed.
var ErrPopupClosed = stderrors.New("popup is closed")

// PopupItemType controls how a list popup item is shown.
type PopupItemType int

const (
	PopupItemEnabled PopupItemType = iota
	PopupItemDisabled
	PopupItemHeader
)

// PopupItem is one entry of a list popup.
type PopupItem struct {
	Name string
	Type PopupItemType
}

// ListPopup is a selection dialog over a list of items.
type ListPopup struct {
	d            *Dispatcher
	items        []PopupItem
	selected     []int
	multiple     bool
	indicesModel ident.ModelID
	namesModel   ident.ModelID
	open         bool
}

// ShowListPopup opens a selection dialog. When the user confirms, the
// selected indices are reported to indicesModel, followed by the selected
// item names to namesModel if it is not empty.
func (d *Dispatcher) ShowListPopup(items []PopupItem, selected []int, multiple bool, indicesModel, namesModel ident.ModelID) *ListPopup {
	return &ListPopup{
		d:            d,
		items:        slices.Clone(items),
		selected:     slices.Clone(selected),
		multiple:     multiple,
		indicesModel: indicesModel,
		namesModel:   namesModel,
		open:         true,
	}
}

// Items returns the popup items.
func (p *ListPopup) Items() []PopupItem { return p.items }

// Selected returns the initially selected indices.
func (p *ListPopup) Selected() []int { return p.selected }

// Multiple reports whether several items can be selected.
func (p *ListPopup) Multiple() bool { return p.multiple }

// Open reports whether the popup is still showing.
func (p *ListPopup) Open() bool { return p.open }

// Select simulates the user confirming indices and closes the popup.
func (p *ListPopup) Select(indices ...int) error {
	if !p.open {
		return ErrPopupClosed
	}
	if !p.multiple && len(indices) > 1 {
		return fmt.Errorf("single-choice popup got %d selections", len(indices))
	}
	names := make([]string, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(p.items) {
			return fmt.Errorf("popup index %d out of range", idx)
		}
		if p.items[idx].Type != PopupItemEnabled {
			return fmt.Errorf("popup item %d is not selectable", idx)
		}
		names[i] = p.items[idx].Name
	}
	p.open = false
	p.d.OnValueChanged(p.indicesModel, value.Ints(indices...))
	if p.namesModel != "" {
		p.d.OnValueChanged(p.namesModel, value.Strings(names...))
	}
	return nil
}

// Cancel closes the popup without reporting anything.
func (p *ListPopup) Cancel() {
	p.open = false
}

// CalendarPopup is a date picker bounded by a minimum and maximum date.
type CalendarPopup struct {
	d       *Dispatcher
	initial value.Value
	min     value.DateTime
	max     value.DateTime
	out     ident.ModelID
	open    bool
}

// ShowCalendarPopup opens a date picker reporting to out. initial may be
// empty. Every other date argument must hold exactly one date.
// It returns false if they do not.
func (d *Dispatcher) ShowCalendarPopup(initial, minDate, maxDate value.Value, out ident.ModelID) (*CalendarPopup, bool) {
	if (!initial.IsEmpty() && !initial.IsDateSingleton()) || !minDate.IsDateSingleton() || !maxDate.IsDateSingleton() {
		return nil, false
	}
	return &CalendarPopup{
		d:       d,
		initial: initial,
		min:     minDate.DateTimes[0],
		max:     maxDate.DateTimes[0],
		out:     out,
		open:    true,
	}, true
}

// Initial returns the preselected date, if any.
func (p *CalendarPopup) Initial() (value.DateTime, bool) {
	if p.initial.IsEmpty() {
		return value.DateTime{}, false
	}
	return p.initial.DateTimes[0], true
}

// Range returns the selectable bounds.
func (p *CalendarPopup) Range() (value.DateTime, value.DateTime) { return p.min, p.max }

// Open reports whether the popup is still showing.
func (p *CalendarPopup) Open() bool { return p.open }

// Pick simulates the user choosing dt and closes the popup.
func (p *CalendarPopup) Pick(dt value.DateTime) error {
	if !p.open {
		return ErrPopupClosed
	}
	ms := dt.UTCMillis()
	if ms < p.min.UTCMillis() || ms > p.max.UTCMillis() {
		return fmt.Errorf("date %s outside [%s, %s]", dt, p.min, p.max)
	}
	p.open = false
	p.d.OnValueChanged(p.out, value.DateTimes(dt))
	return nil
}

// Clear simulates the user tapping clear. An empty value is reported.
func (p *CalendarPopup) Clear() error {
	if !p.open {
		return ErrPopupClosed
	}
	p.open = false
	p.d.OnValueChanged(p.out, value.Value{})
	return nil
}

// Cancel closes the popup without reporting anything.
func (p *CalendarPopup) Cancel() {
	p.open = false
}

// GenericPopup shows an arbitrary view in a dialog.
type GenericPopup struct {
	d       *Dispatcher
	id      ident.PopupID
	content view.Node
	open    bool
}

// ShowGenericPopup opens a dialog showing content. Dismissing it notifies
// the delegate with id.
func (d *Dispatcher) ShowGenericPopup(content view.Node, id ident.PopupID) *GenericPopup {
	return &GenericPopup{d: d, id: id, content: content, open: true}
}

// ID returns the popup identifier.
func (p *GenericPopup) ID() ident.PopupID { return p.id }

// Content returns the view shown in the popup.
func (p *GenericPopup) Content() view.Node { return p.content }

// Open reports whether the popup is still showing.
func (p *GenericPopup) Open() bool { return p.open }

// Dismiss closes the popup, disposes its content, and notifies the delegate.
// Only the first call has any effect.
func (p *GenericPopup) Dismiss() bool {
	if !p.open {
		return false
	}
	p.open = false
	if p.content != nil {
		p.content.Dispose()
	}
	p.d.OnGenericPopupDismissed(p.id)
	return true
}
