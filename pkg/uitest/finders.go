package uitest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/genui/pkg/descriptor"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/view"
)

// Finder locates nodes in a view tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root view.Node) []view.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []view.Node
	finder Finder
}

// Find evaluates f against root.
func Find(root view.Node, f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(root), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() view.Node {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() view.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []view.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// IDs returns the identifiers of all matches.
func (r FinderResult) IDs() []ident.ViewID {
	ids := make([]ident.ViewID, len(r.nodes))
	for i, n := range r.nodes {
		ids[i] = n.ID()
	}
	return ids
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(view.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root view.Node) []view.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByID returns a finder that matches nodes tagged with id.
func ByID(id ident.ViewID) Finder {
	return &predicateFinder{
		fn:   func(n view.Node) bool { return n.ID() == id },
		desc: fmt.Sprintf("ByID(%s)", id),
	}
}

// ByKind returns a finder that matches nodes of kind k.
func ByKind(k descriptor.Kind) Finder {
	return &predicateFinder{
		fn:   func(n view.Node) bool { return n.Kind() == k },
		desc: fmt.Sprintf("ByKind(%s)", k),
	}
}

// ByType returns a finder that matches nodes whose concrete type is T.
func ByType[T view.Node]() Finder {
	t := reflect.TypeFor[T]()
	return &predicateFinder{
		fn:   func(n view.Node) bool { return reflect.TypeOf(n) == t },
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByText returns a finder that matches text nodes whose plain text, with
// markup removed, equals text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(n view.Node) bool {
			t, ok := n.(*view.TextNode)
			return ok && view.PlainText(t.Spans()) == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches text nodes whose plain text
// contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(n view.Node) bool {
			t, ok := n.(*view.TextNode)
			return ok && strings.Contains(view.PlainText(t.Spans()), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(view.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root view.Node) []view.Node {
	var results []view.Node
	seen := make(map[view.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		view.Walk(ancestor, func(n view.Node) bool {
			if n == ancestor {
				return true
			}
			for _, match := range f.matching.Evaluate(n) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
			return false
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal, collecting
// nodes that satisfy the predicate.
func collectMatches(root view.Node, predicate func(view.Node) bool) []view.Node {
	var results []view.Node
	view.Walk(root, func(n view.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}
