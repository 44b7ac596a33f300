package descriptor

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/platform"
)

// SchemaMajor is the tree file major version this package understands.
const SchemaMajor = "v1"

// Format selects the encoding of a tree file.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatForPath picks a format from a file extension. Unknown extensions are YAML.
func FormatForPath(name string) Format {
	if strings.EqualFold(path.Ext(name), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Tree is a versioned descriptor tree.
type Tree struct {
	SchemaVersion string
	Root          Descriptor
}

// ParseTree decodes a tree file. The whole tree is rejected before any view is
// built if the schema version is unsupported or any descriptor is malformed.
func ParseTree(data []byte, format Format) (*Tree, error) {
	var raw any
	switch format {
	case FormatJSON:
		decoded, err := platform.DefaultCodec.Decode(data)
		if err != nil {
			return nil, errors.New("descriptor.ParseTree", errors.KindParsing, err)
		}
		raw = decoded
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.New("descriptor.ParseTree", errors.KindParsing, err)
		}
	}

	m := platform.ParseMap(raw)
	if m == nil {
		return nil, errors.New("descriptor.ParseTree", errors.KindParsing,
			&errors.ParseError{DataType: "tree", Got: raw})
	}

	t := &Tree{SchemaVersion: platform.ParseString(m["schema_version"])}
	if err := CheckSchemaVersion(t.SchemaVersion, ""); err != nil {
		return nil, errors.New("descriptor.ParseTree", errors.KindDescriptor, err)
	}

	root, err := FromAny(m["root"])
	if err != nil {
		return nil, err
	}
	t.Root = root
	if err := t.Root.Validate(); err != nil {
		return nil, errors.New("descriptor.ParseTree", errors.KindDescriptor, err)
	}
	return t, nil
}

// LoadTree reads and parses the tree file name from fsys.
func LoadTree(fsys fs.FS, name string) (*Tree, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return ParseTree(data, FormatForPath(name))
}

// CheckSchemaVersion verifies that v is a valid semantic version with the
// supported major version and, if minVersion is set, is not older than it.
func CheckSchemaVersion(v, minVersion string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid schema_version %q", v)
	}
	if major := semver.Major(v); major != SchemaMajor {
		return fmt.Errorf("unsupported schema_version %s (want %s.x)", v, SchemaMajor)
	}
	if minVersion != "" && semver.Compare(v, minVersion) < 0 {
		return fmt.Errorf("schema_version %s is older than required %s", v, minVersion)
	}
	return nil
}

// MarshalYAML renders the tree in the same shape ParseTree accepts.
func (t *Tree) MarshalYAML() (any, error) {
	return map[string]any{
		"schema_version": t.SchemaVersion,
		"root":           descriptorToAny(t.Root),
	}, nil
}

func descriptorToAny(d Descriptor) map[string]any {
	out := map[string]any{
		"id":   string(d.ID),
		"kind": d.Kind.String(),
	}
	if len(d.Attributes) > 0 {
		attrs := make(map[string]any, len(d.Attributes))
		for k, a := range d.Attributes {
			attrs[k] = attributeToAny(a)
		}
		out["attributes"] = attrs
	}
	if len(d.Children) > 0 {
		children := make([]any, len(d.Children))
		for i, c := range d.Children {
			children[i] = descriptorToAny(c)
		}
		out["children"] = children
	}
	return out
}

func attributeToAny(a Attribute) any {
	switch a.Type() {
	case AttrBool:
		b, _ := a.AsBool()
		return b
	case AttrNumber:
		n, _ := a.AsNumber()
		return n
	case AttrString:
		s, _ := a.AsString()
		return s
	case AttrColor:
		c, _ := a.AsColor()
		return map[string]any{"color": c}
	case AttrDrawable:
		ref, _ := a.AsDrawable()
		return map[string]any{"drawable": drawableToAny(ref)}
	case AttrList:
		list, _ := a.AsList()
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = attributeToAny(item)
		}
		return out
	default:
		return nil
	}
}

func drawableToAny(r DrawableRef) map[string]any {
	switch r.Kind {
	case DrawableBitmap:
		return map[string]any{"bitmap": map[string]any{"path": r.Path, "width": r.Width, "height": r.Height}}
	case DrawableIcon:
		return map[string]any{"icon": r.Icon}
	default:
		return map[string]any{"shape": map[string]any{
			"fill":          r.Fill,
			"corner_radius": r.CornerRadius,
			"stroke":        r.Stroke,
			"stroke_width":  r.StrokeWidth,
		}}
	}
}
