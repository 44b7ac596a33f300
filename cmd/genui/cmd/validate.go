package cmd

import (
	"context"
	"fmt"

	"github.com/go-drift/genui/cmd/genui/internal/config"
	"github.com/go-drift/genui/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check tree files",
		Long: `Check one or more descriptor tree files.

Each file is parsed, its schema version is checked against
schema.min_version from genui.yaml, and the tree is built headlessly.
Unknown kinds, duplicate identifiers, misplaced slots, and inputs
without a model are all reported. Missing resources are logged but do
not fail validation.`,
		Usage: "genui validate <tree.yaml|tree.json>...",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one tree file is required\n\nUsage: genui validate <tree.yaml>")
	}

	cfg, err := loadProject()
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		count, err := validateFile(path, cfg)
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(stdout, "ok   %s (%d views)\n", path, count)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tree files failed validation", failed, len(args))
	}
	return nil
}

func validateFile(path string, cfg *config.Resolved) (int, error) {
	tree, err := readTree(path, cfg)
	if err != nil {
		return 0, err
	}
	s := newScreen(cfg, cfg.Density, cfg.Palette())
	root, err := s.build(context.Background(), tree.Root)
	if err != nil {
		return 0, err
	}
	defer root.Dispose()

	count := 0
	view.Walk(root, func(view.Node) bool {
		count++
		return true
	})
	return count, nil
}
