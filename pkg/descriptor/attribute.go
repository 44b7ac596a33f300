package descriptor

import (
	"fmt"
	"strings"
)

// AttrType identifies which member of an Attribute is populated.
type AttrType int

const (
	AttrNone AttrType = iota
	AttrBool
	AttrNumber
	AttrString
	AttrColor
	AttrDrawable
	AttrList
)

var attrTypeNames = [...]string{
	AttrNone:     "none",
	AttrBool:     "bool",
	AttrNumber:   "number",
	AttrString:   "string",
	AttrColor:    "color",
	AttrDrawable: "drawable",
	AttrList:     "list",
}

func (t AttrType) String() string {
	if t >= 0 && int(t) < len(attrTypeNames) {
		return attrTypeNames[t]
	}
	return fmt.Sprintf("AttrType(%d)", int(t))
}

// Attribute is a tagged union over the values a descriptor attribute may
// carry. Color and drawable references are resolved against a rendering
// context when the view is built.
type Attribute struct {
	typ  AttrType
	b    bool
	n    float64
	s    string
	d    DrawableRef
	list []Attribute
}

// Bool returns a boolean attribute.
func Bool(b bool) Attribute { return Attribute{typ: AttrBool, b: b} }

// Number returns a numeric attribute. Dimensions are in dp.
func Number(n float64) Attribute { return Attribute{typ: AttrNumber, n: n} }

// Str returns a string attribute.
func Str(s string) Attribute { return Attribute{typ: AttrString, s: s} }

// Color returns a color reference: a palette token or a #RRGGBB / #AARRGGBB literal.
func Color(token string) Attribute { return Attribute{typ: AttrColor, s: token} }

// Drawable returns a drawable reference.
func Drawable(ref DrawableRef) Attribute { return Attribute{typ: AttrDrawable, d: ref} }

// List returns a list attribute.
func List(items ...Attribute) Attribute { return Attribute{typ: AttrList, list: items} }

// Type returns the populated member.
func (a Attribute) Type() AttrType { return a.typ }

// AsBool returns the boolean member.
func (a Attribute) AsBool() (bool, bool) { return a.b, a.typ == AttrBool }

// AsNumber returns the numeric member.
func (a Attribute) AsNumber() (float64, bool) { return a.n, a.typ == AttrNumber }

// AsInt returns the numeric member truncated to int.
func (a Attribute) AsInt() (int, bool) { return int(a.n), a.typ == AttrNumber }

// AsString returns the string member.
func (a Attribute) AsString() (string, bool) { return a.s, a.typ == AttrString }

// AsColor returns the color token.
func (a Attribute) AsColor() (string, bool) { return a.s, a.typ == AttrColor }

// AsDrawable returns the drawable reference.
func (a Attribute) AsDrawable() (DrawableRef, bool) { return a.d, a.typ == AttrDrawable }

// AsList returns the list member.
func (a Attribute) AsList() ([]Attribute, bool) { return a.list, a.typ == AttrList }

// Equal reports whether a and b hold the same value.
func (a Attribute) Equal(b Attribute) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case AttrBool:
		return a.b == b.b
	case AttrNumber:
		return a.n == b.n
	case AttrString, AttrColor:
		return a.s == b.s
	case AttrDrawable:
		return a.d == b.d
	case AttrList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !a.list[i].Equal(b.list[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (a Attribute) String() string {
	switch a.typ {
	case AttrBool:
		return fmt.Sprint(a.b)
	case AttrNumber:
		return fmt.Sprint(a.n)
	case AttrString:
		return fmt.Sprintf("%q", a.s)
	case AttrColor:
		return "color(" + a.s + ")"
	case AttrDrawable:
		return a.d.String()
	case AttrList:
		parts := make([]string, len(a.list))
		for i, item := range a.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "none"
	}
}

// DrawableKind identifies the source of a drawable.
type DrawableKind int

const (
	// DrawableBitmap is an image file in the resource filesystem.
	DrawableBitmap DrawableKind = iota
	// DrawableIcon is a named icon from the icon table.
	DrawableIcon
	// DrawableShape is a rectangle with optional rounded corners and stroke.
	DrawableShape
)

// DrawableRef describes a drawable to be resolved at build time.
// It is comparable and used as a cache key.
type DrawableRef struct {
	Kind DrawableKind

	// Bitmap.
	Path   string
	Width  int
	Height int

	// Icon.
	Icon string

	// Shape. Colors are palette tokens or literals; sizes are dp.
	Fill         string
	CornerRadius int
	Stroke       string
	StrokeWidth  int
}

func (r DrawableRef) String() string {
	switch r.Kind {
	case DrawableBitmap:
		return fmt.Sprintf("bitmap(%s %dx%d)", r.Path, r.Width, r.Height)
	case DrawableIcon:
		return "icon(" + r.Icon + ")"
	case DrawableShape:
		return fmt.Sprintf("shape(fill=%s radius=%d stroke=%s/%d)", r.Fill, r.CornerRadius, r.Stroke, r.StrokeWidth)
	default:
		return "drawable(?)"
	}
}
