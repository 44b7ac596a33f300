package view

import (
	"errors"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
)

// CellRole identifies what occupies a grid cell of a choice list.
type CellRole int

const (
	CellSelector CellRole = iota
	CellContent
	CellEdit
	CellSpacer
	CellAddIcon
	CellAddLabel
)

// Cell is one placed grid cell. Item is -1 for the add button row.
type Cell struct {
	Row        int
	Column     int
	ColumnSpan int
	Role       CellRole
	Item       int
}

type choiceItem struct {
	content Node
	checked bool
	hasEdit bool
}

// ChoiceListOptions configures a choice list.
type ChoiceListOptions struct {
	// AddButtonText enables a trailing add button when non-empty.
	AddButtonText string
	// HasEditColumn reserves a third column for per-item edit buttons.
	HasEditColumn bool
	// RowSpacing and ColumnSpacing are in pixels.
	RowSpacing    int
	ColumnSpacing int
}

// ChoiceListNode is a grid of selectable items: a radio button or checkbox,
// the item content, and an optional edit button per row, followed by an
// optional add button.
type ChoiceListNode struct {
	Base
	opts     ChoiceListOptions
	items    []*choiceItem
	multiple bool

	onSelect func(index int, checked bool)
	onChoice func()
	onEdit   func(index int)
	onAdd    func()
}

// NewChoiceList creates an empty choice list.
func NewChoiceList(id ident.ViewID, opts ChoiceListOptions) *ChoiceListNode {
	n := &ChoiceListNode{opts: opts}
	n.init(n, id, descriptor.KindChoiceList)
	return n
}

// Options returns the list configuration.
func (n *ChoiceListNode) Options() ChoiceListOptions { return n.opts }

// SetSpacing sets the row and column gaps in pixels.
func (n *ChoiceListNode) SetSpacing(row, column int) {
	n.opts.RowSpacing = row
	n.opts.ColumnSpacing = column
}

// ColumnCount is 3 with an edit column, 2 otherwise.
func (n *ChoiceListNode) ColumnCount() int {
	if n.opts.HasEditColumn {
		return 3
	}
	return 2
}

// CanAddItems reports whether the list shows an add button.
func (n *ChoiceListNode) CanAddItems() bool { return n.opts.AddButtonText != "" }

// AllowsMultipleChoices reports checkbox semantics.
func (n *ChoiceListNode) AllowsMultipleChoices() bool { return n.multiple }

// SetAllowMultipleChoices switches between radio and checkbox semantics. It
// is only allowed while the list is empty.
func (n *ChoiceListNode) SetAllowMultipleChoices(multiple bool) error {
	if len(n.items) > 0 {
		return errors.New("cannot change multiple-choice mode after items were added")
	}
	n.multiple = multiple
	return nil
}

// AddChild adds child as an item with an edit button if the list has an edit column.
func (n *ChoiceListNode) AddChild(child Node) error {
	return n.AddItem(child, n.opts.HasEditColumn)
}

// AddItem appends content as a new item, before the add button.
func (n *ChoiceListNode) AddItem(content Node, hasEdit bool) error {
	if content == nil {
		return errors.New("nil item")
	}
	if hasEdit && !n.opts.HasEditColumn {
		return errors.New("choice list has no edit column")
	}
	if err := adopt(n, content); err != nil {
		return err
	}
	n.items = append(n.items, &choiceItem{content: content, hasEdit: hasEdit})
	return nil
}

// Children returns the item contents in order.
func (n *ChoiceListNode) Children() []Node {
	out := make([]Node, len(n.items))
	for i, item := range n.items {
		out[i] = item.content
	}
	return out
}

// RemoveAll clears every item.
func (n *ChoiceListNode) RemoveAll() []Node {
	removed := n.Children()
	for _, c := range removed {
		release(c)
	}
	n.items = nil
	return removed
}

func (n *ChoiceListNode) childNodes() []Node { return n.Children() }

// ItemCount returns the number of items.
func (n *ChoiceListNode) ItemCount() int { return len(n.items) }

// Item returns the content of item i, or nil if out of range.
func (n *ChoiceListNode) Item(i int) Node {
	if i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i].content
}

// IsChecked reports whether content is checked.
func (n *ChoiceListNode) IsChecked(content Node) bool {
	for _, item := range n.items {
		if item.content == content {
			return item.checked
		}
	}
	return false
}

// SetChecked checks or unchecks content. Without multiple choices, checking
// one item unchecks all others. The select listener fires for every item
// whose state changed.
func (n *ChoiceListNode) SetChecked(content Node, checked bool) {
	for i, item := range n.items {
		switch {
		case item.content == content:
			n.setItem(i, checked)
		case checked && !n.multiple:
			n.setItem(i, false)
		}
	}
}

// ClearChecked unchecks every item.
func (n *ChoiceListNode) ClearChecked() {
	for i := range n.items {
		n.setItem(i, false)
	}
}

// Select simulates a tap on item i: checkboxes invert, radio buttons select.
func (n *ChoiceListNode) Select(i int) bool {
	if !n.Alive() || !n.props.Enabled || i < 0 || i >= len(n.items) {
		return false
	}
	checked := true
	if n.multiple {
		checked = !n.items[i].checked
	}
	n.SetChecked(n.items[i].content, checked)
	if n.onChoice != nil {
		n.onChoice()
	}
	return true
}

// ClickEdit simulates a tap on the edit button of item i.
func (n *ChoiceListNode) ClickEdit(i int) bool {
	if !n.Alive() || i < 0 || i >= len(n.items) || !n.items[i].hasEdit || n.onEdit == nil {
		return false
	}
	n.onEdit(i)
	return true
}

// ClickAdd simulates a tap on the add button.
func (n *ChoiceListNode) ClickAdd() bool {
	if !n.Alive() || !n.CanAddItems() || n.onAdd == nil {
		return false
	}
	n.onAdd()
	return true
}

// SetOnSelect sets the item selection listener.
func (n *ChoiceListNode) SetOnSelect(fn func(index int, checked bool)) { n.onSelect = fn }

// SetOnChoice sets a listener fired once after each user selection, after
// every item listener. Programmatic SetChecked calls do not fire it.
func (n *ChoiceListNode) SetOnChoice(fn func()) { n.onChoice = fn }

// SetOnEdit sets the edit listener.
func (n *ChoiceListNode) SetOnEdit(fn func(index int)) { n.onEdit = fn }

// SetOnAdd sets the add listener.
func (n *ChoiceListNode) SetOnAdd(fn func()) { n.onAdd = fn }

// Cells returns the grid placement of every cell in row-major order.
func (n *ChoiceListNode) Cells() []Cell {
	cols := n.ColumnCount()
	cells := make([]Cell, 0, len(n.items)*cols+2)
	for i, item := range n.items {
		cells = append(cells,
			Cell{Row: i, Column: 0, ColumnSpan: 1, Role: CellSelector, Item: i},
			Cell{Row: i, Column: 1, ColumnSpan: 1, Role: CellContent, Item: i},
		)
		if n.opts.HasEditColumn {
			role := CellSpacer
			if item.hasEdit {
				role = CellEdit
			}
			cells = append(cells, Cell{Row: i, Column: 2, ColumnSpan: 1, Role: role, Item: i})
		}
	}
	if n.CanAddItems() {
		row := len(n.items)
		cells = append(cells,
			Cell{Row: row, Column: 0, ColumnSpan: 1, Role: CellAddIcon, Item: -1},
			Cell{Row: row, Column: 1, ColumnSpan: cols - 1, Role: CellAddLabel, Item: -1},
		)
	}
	return cells
}

func (n *ChoiceListNode) setItem(i int, checked bool) {
	item := n.items[i]
	if item.checked == checked {
		return
	}
	item.checked = checked
	if n.onSelect != nil {
		n.onSelect(i, checked)
	}
}
