package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/go-drift/genui/pkg/resources"
	"github.com/go-drift/genui/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Print the view tree a descriptor builds",
		Long: `Build a descriptor tree headlessly and print the resulting views.

Each line shows a view's kind and identifier followed by the state the
builder derived from its attributes: text, values, checked and expanded
state, resolved drawables, padding in pixels, visibility.

Flags:
  --theme light|dark   Palette to resolve colors with (default: genui.yaml)
  --density N          Screen density (default: genui.yaml)
  --json               Print the snapshot as JSON instead of a tree
  --plain              Disable colors`,
		Usage: "genui render [--theme light|dark] [--density N] [--json] [--plain] <tree.yaml>",
		Run:   runRender,
	})
}

type renderOptions struct {
	path    string
	theme   string
	density float64
	json    bool
	plain   bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--json":
			opts.json = true
		case arg == "--plain":
			opts.plain = true
		case arg == "--theme" || arg == "--density":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			if err := opts.set(arg, args[i]); err != nil {
				return opts, err
			}
		case strings.HasPrefix(arg, "--theme=") || strings.HasPrefix(arg, "--density="):
			name, val, _ := strings.Cut(arg, "=")
			if err := opts.set(name, val); err != nil {
				return opts, err
			}
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %s", arg)
		default:
			if opts.path != "" {
				return opts, fmt.Errorf("only one tree file may be rendered at a time")
			}
			opts.path = arg
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("tree file is required\n\nUsage: genui render <tree.yaml>")
	}
	return opts, nil
}

func (o *renderOptions) set(flag, val string) error {
	switch flag {
	case "--theme":
		o.theme = val
	case "--density":
		d, err := strconv.ParseFloat(val, 64)
		if err != nil || d <= 0 {
			return fmt.Errorf("--density must be a positive number, got %q", val)
		}
		o.density = d
	}
	return nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadProject()
	if err != nil {
		return err
	}
	palette := cfg.Palette()
	if opts.theme != "" {
		if palette, err = resources.PaletteByName(opts.theme); err != nil {
			return err
		}
	}
	density := cfg.Density
	if opts.density > 0 {
		density = opts.density
	}

	t, err := readTree(opts.path, cfg)
	if err != nil {
		return err
	}
	root, err := newScreen(cfg, density, palette).build(context.Background(), t.Root)
	if err != nil {
		return err
	}
	defer root.Dispose()

	snap := view.Snap(root)
	if opts.json {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintln(stdout, renderTree(snap, newTreeStyles(opts.plain)))
	return nil
}

type treeStyles struct {
	kind   lipgloss.Style
	id     lipgloss.Style
	detail lipgloss.Style
	muted  lipgloss.Style
	branch lipgloss.Style
}

func newTreeStyles(plain bool) treeStyles {
	if plain {
		s := lipgloss.NewStyle()
		return treeStyles{kind: s, id: s, detail: s, muted: s, branch: s}
	}
	return treeStyles{
		kind:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		id:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		branch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// renderTree draws a snapshot as a lipgloss tree, one view per line.
func renderTree(s view.Snapshot, st treeStyles) string {
	t := buildTree(s, st).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(st.branch)
	return t.String()
}

func buildTree(s view.Snapshot, st treeStyles) *tree.Tree {
	t := tree.Root(label(s, st))
	for _, child := range s.Children {
		if len(child.Children) == 0 {
			t.Child(label(child, st))
			continue
		}
		t.Child(buildTree(child, st))
	}
	return t
}

func label(s view.Snapshot, st treeStyles) string {
	head := st.kind.Render(s.Kind) + " " + st.id.Render("#"+s.ID)
	rest := strings.TrimPrefix(s.Summary(), s.Kind+" #"+s.ID)
	if rest == "" {
		return head
	}
	if !s.Visible || !s.Enabled {
		return head + st.muted.Render(rest)
	}
	return head + st.detail.Render(rest)
}
