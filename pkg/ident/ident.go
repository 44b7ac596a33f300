// Package ident defines the validated identifier keyspaces used to address
// views, model values, and popups.
//
// Identifiers are checked once, when they are constructed. Code that holds a
// ViewID, ModelID, or PopupID can rely on it being well formed and never
// re-validates it at lookup time.
package ident

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxLength is the longest identifier accepted, in bytes.
const MaxLength = 256

// ErrEmpty is returned for empty or whitespace-only identifiers.
var ErrEmpty = errors.New("identifier is empty")

// ViewID names a view within one tree snapshot.
type ViewID string

// ModelID names a value owned by the logic layer.
type ModelID string

// PopupID names a popup shown on behalf of the logic layer.
type PopupID string

func (id ViewID) String() string  { return string(id) }
func (id ModelID) String() string { return string(id) }
func (id PopupID) String() string { return string(id) }

// NewViewID validates s as a view identifier.
func NewViewID(s string) (ViewID, error) {
	if err := validate("view", s); err != nil {
		return "", err
	}
	return ViewID(s), nil
}

// NewModelID validates s as a model identifier.
func NewModelID(s string) (ModelID, error) {
	if err := validate("model", s); err != nil {
		return "", err
	}
	return ModelID(s), nil
}

// NewPopupID validates s as a popup identifier.
func NewPopupID(s string) (PopupID, error) {
	if err := validate("popup", s); err != nil {
		return "", err
	}
	return PopupID(s), nil
}

// MustViewID is like NewViewID but panics on invalid input.
// Intended for identifiers written as literals.
func MustViewID(s string) ViewID {
	id, err := NewViewID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MustModelID is like NewModelID but panics on invalid input.
func MustModelID(s string) ModelID {
	id, err := NewModelID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MustPopupID is like NewPopupID but panics on invalid input.
func MustPopupID(s string) PopupID {
	id, err := NewPopupID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func validate(space, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s %w", space, ErrEmpty)
	}
	if len(s) > MaxLength {
		return fmt.Errorf("%s identifier exceeds %d bytes", space, MaxLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s identifier %q contains control character %U", space, s, r)
		}
	}
	return nil
}
