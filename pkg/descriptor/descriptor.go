// Package descriptor defines the declarative description of a view tree: one
// Descriptor per node, carrying an identifier, a kind, and typed attributes.
//
// Descriptors arrive either programmatically from the logic layer or as a
// tree file (YAML or JSON) versioned with a semantic schema version.
package descriptor

import (
	"fmt"
	"sort"

	"github.com/go-drift/genui/pkg/ident"
)

// Descriptor describes a single view and, for containers and slotted kinds,
// its children. Children are appended in order.
type Descriptor struct {
	ID         ident.ViewID
	Kind       Kind
	Attributes map[string]Attribute
	Children   []Descriptor
}

// Attr returns the attribute stored under key.
func (d Descriptor) Attr(key string) (Attribute, bool) {
	a, ok := d.Attributes[key]
	return a, ok
}

// Bool returns the boolean attribute under key, or def.
func (d Descriptor) Bool(key string, def bool) bool {
	if b, ok := d.Attributes[key].AsBool(); ok {
		return b
	}
	return def
}

// Int returns the numeric attribute under key truncated to int, or def.
func (d Descriptor) Int(key string, def int) int {
	if n, ok := d.Attributes[key].AsInt(); ok {
		return n
	}
	return def
}

// Float returns the numeric attribute under key, or def.
func (d Descriptor) Float(key string, def float64) float64 {
	if n, ok := d.Attributes[key].AsNumber(); ok {
		return n
	}
	return def
}

// Str returns the string attribute under key, or def.
func (d Descriptor) Str(key string, def string) string {
	if s, ok := d.Attributes[key].AsString(); ok {
		return s
	}
	return def
}

// Slot returns the slot name assigned to this descriptor by its parent, if any.
func (d Descriptor) Slot() string {
	return d.Str(KeySlot, "")
}

// SortedKeys returns the attribute keys in lexical order.
func (d Descriptor) SortedKeys() []string {
	keys := make([]string, 0, len(d.Attributes))
	for k := range d.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks d and its descendants: every kind must be known, identifiers
// must be unique within the tree, leaf kinds may only have slotted children,
// and model-bound kinds must name a model.
func (d Descriptor) Validate() error {
	seen := make(map[ident.ViewID]struct{})
	return d.validate(seen)
}

func (d Descriptor) validate(seen map[ident.ViewID]struct{}) error {
	if _, err := ident.NewViewID(string(d.ID)); err != nil {
		return err
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("view %s: unknown view kind %s", d.ID, d.Kind)
	}
	if _, dup := seen[d.ID]; dup {
		return fmt.Errorf("view %s: duplicate identifier", d.ID)
	}
	seen[d.ID] = struct{}{}

	switch d.Kind {
	case KindTextInput, KindToggleButton:
		if _, err := ident.NewModelID(d.Str(KeyModel, "")); err != nil {
			return fmt.Errorf("view %s: %w", d.ID, err)
		}
	}

	for _, child := range d.Children {
		if !d.Kind.IsContainer() && !allowsSlot(d.Kind, child.Slot()) {
			return fmt.Errorf("view %s: %s does not accept child %s in slot %q", d.ID, d.Kind, child.ID, child.Slot())
		}
		if err := child.validate(seen); err != nil {
			return err
		}
	}
	return nil
}

func allowsSlot(k Kind, slot string) bool {
	switch k {
	case KindVerticalExpander:
		return slot == SlotTitle || slot == SlotCollapsed || slot == SlotExpanded
	case KindToggleButton:
		return slot == SlotLeft || slot == SlotRight
	default:
		return false
	}
}

// Walk calls fn for d and each descendant in depth-first pre-order.
func (d Descriptor) Walk(fn func(Descriptor)) {
	fn(d)
	for _, child := range d.Children {
		child.Walk(fn)
	}
}
