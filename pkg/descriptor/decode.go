package descriptor

import (
	"fmt"

	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/platform"
)

// FromAny decodes an untyped descriptor, as produced by the JSON codec or a
// YAML decoder. An unknown kind is rejected with a KindDescriptor error.
func FromAny(raw any) (Descriptor, error) {
	m := platform.ParseMap(raw)
	if m == nil {
		return Descriptor{}, errors.New("descriptor.FromAny", errors.KindParsing,
			&errors.ParseError{DataType: "descriptor", Got: raw})
	}

	id, err := ident.NewViewID(platform.ParseString(m["id"]))
	if err != nil {
		return Descriptor{}, errors.New("descriptor.FromAny", errors.KindDescriptor, err)
	}
	kind, err := ParseKind(platform.ParseString(m["kind"]))
	if err != nil {
		return Descriptor{}, errors.ForView("descriptor.FromAny", errors.KindDescriptor, string(id), err)
	}

	d := Descriptor{ID: id, Kind: kind}
	if attrs := platform.ParseMap(m["attributes"]); len(attrs) > 0 {
		d.Attributes = make(map[string]Attribute, len(attrs))
		for key, rawAttr := range attrs {
			a, err := AttributeFromAny(rawAttr)
			if err != nil {
				return Descriptor{}, errors.ForView("descriptor.FromAny", errors.KindDescriptor, string(id),
					fmt.Errorf("attribute %s: %w", key, err))
			}
			d.Attributes[key] = a
		}
	}

	children, ok := platform.ParseSlice(m["children"])
	if !ok {
		return Descriptor{}, errors.ForView("descriptor.FromAny", errors.KindParsing, string(id),
			&errors.ParseError{Field: "children", DataType: "[]descriptor", Got: m["children"]})
	}
	for _, rawChild := range children {
		child, err := FromAny(rawChild)
		if err != nil {
			return Descriptor{}, err
		}
		d.Children = append(d.Children, child)
	}
	return d, nil
}

// AttributeFromAny decodes an untyped attribute value. Scalars map directly;
// {color: token} and {drawable: {...}} objects produce references.
func AttributeFromAny(raw any) (Attribute, error) {
	switch v := raw.(type) {
	case bool:
		return Bool(v), nil
	case string:
		return Str(v), nil
	case []any:
		items := make([]Attribute, 0, len(v))
		for _, item := range v {
			a, err := AttributeFromAny(item)
			if err != nil {
				return Attribute{}, err
			}
			items = append(items, a)
		}
		return List(items...), nil
	}
	if n, ok := platform.ToFloat64(raw); ok {
		return Number(n), nil
	}
	if n, ok := platform.ToInt64(raw); ok {
		return Number(float64(n)), nil
	}

	m := platform.ParseMap(raw)
	if m == nil {
		return Attribute{}, &errors.ParseError{DataType: "attribute", Got: raw}
	}
	if token, ok := m["color"].(string); ok {
		return Color(token), nil
	}
	if rawRef, ok := m["drawable"]; ok {
		ref, err := drawableFromAny(rawRef)
		if err != nil {
			return Attribute{}, err
		}
		return Drawable(ref), nil
	}
	return Attribute{}, &errors.ParseError{DataType: "attribute", Got: raw}
}

func drawableFromAny(raw any) (DrawableRef, error) {
	m := platform.ParseMap(raw)
	if m == nil {
		return DrawableRef{}, &errors.ParseError{Field: "drawable", DataType: "drawable", Got: raw}
	}
	num := func(src map[string]any, key string) int {
		n, _ := platform.ToInt(src[key])
		return n
	}
	switch {
	case m["bitmap"] != nil:
		b := platform.ParseMap(m["bitmap"])
		if b == nil || platform.ParseString(b["path"]) == "" {
			return DrawableRef{}, &errors.ParseError{Field: "bitmap", DataType: "bitmap", Got: m["bitmap"]}
		}
		return DrawableRef{
			Kind:   DrawableBitmap,
			Path:   platform.ParseString(b["path"]),
			Width:  num(b, "width"),
			Height: num(b, "height"),
		}, nil
	case m["icon"] != nil:
		name := platform.ParseString(m["icon"])
		if name == "" {
			return DrawableRef{}, &errors.ParseError{Field: "icon", DataType: "string", Got: m["icon"]}
		}
		return DrawableRef{Kind: DrawableIcon, Icon: name}, nil
	case m["shape"] != nil:
		s := platform.ParseMap(m["shape"])
		if s == nil {
			return DrawableRef{}, &errors.ParseError{Field: "shape", DataType: "shape", Got: m["shape"]}
		}
		return DrawableRef{
			Kind:         DrawableShape,
			Fill:         platform.ParseString(s["fill"]),
			CornerRadius: num(s, "corner_radius"),
			Stroke:       platform.ParseString(s["stroke"]),
			StrokeWidth:  num(s, "stroke_width"),
		}, nil
	default:
		return DrawableRef{}, &errors.ParseError{Field: "drawable", DataType: "bitmap, icon or shape", Got: raw}
	}
}
