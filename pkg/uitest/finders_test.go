package uitest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/view"
)

// buildTree assembles:
//
//	root (LinearLayout)
//	├─ greeting (Text "Hello <link1>world</link1>")
//	├─ card (VerticalExpander)
//	│  ├─ card_title (Text "Hello")
//	│  └─ card_body (Text "Body")
//	└─ divider (Divider)
func buildTree(t *testing.T) view.Node {
	t.Helper()
	text := func(id, s string) *view.TextNode {
		n := view.NewText(ident.MustViewID(id))
		n.SetText(s)
		return n
	}
	root := view.NewLinearLayout("root", view.Vertical)
	card := view.NewExpander("card")
	if err := card.SetSlots(text("card_title", "Hello"), nil, text("card_body", "Body")); err != nil {
		t.Fatal(err)
	}
	for _, child := range []view.Node{text("greeting", "Hello <link1>world</link1>"), card, view.NewDivider("divider")} {
		if err := root.AddChild(child); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestFinders(t *testing.T) {
	root := buildTree(t)

	tests := []struct {
		name   string
		finder Finder
		want   []ident.ViewID
	}{
		{"by id", ByID("card_body"), []ident.ViewID{"card_body"}},
		{"by kind", ByKind(descriptor.KindText), []ident.ViewID{"greeting", "card_title", "card_body"}},
		{"by type", ByType[*view.DividerNode](), []ident.ViewID{"divider"}},
		{"by plain text", ByText("Hello world"), []ident.ViewID{"greeting"}},
		{"by text containing", ByTextContaining("Hello"), []ident.ViewID{"greeting", "card_title"}},
		{"descendant", Descendant(ByID("card"), ByKind(descriptor.KindText)), []ident.ViewID{"card_title", "card_body"}},
		{"no match", ByID("missing"), []ident.ViewID{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(root, tt.finder).IDs()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.finder.Description(), diff)
			}
		})
	}
}

func TestFinderResult(t *testing.T) {
	root := buildTree(t)

	r := Find(root, ByKind(descriptor.KindDivider))
	if !r.Exists() || r.Count() != 1 {
		t.Fatalf("Exists() = %v, Count() = %d", r.Exists(), r.Count())
	}
	if r.First().ID() != "divider" {
		t.Errorf("First() = %s", r.First().ID())
	}

	empty := Find(root, ByID("missing"))
	if empty.FirstOrNil() != nil {
		t.Error("FirstOrNil() should be nil")
	}
	defer func() {
		if recover() == nil {
			t.Error("First() on an empty result should panic")
		}
	}()
	empty.First()
}
