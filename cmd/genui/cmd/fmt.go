package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "fmt",
		Short: "Print a tree file in canonical YAML",
		Long: `Parse a descriptor tree file (YAML or JSON) and print it as YAML
with attributes in sorted order. Use it to convert JSON trees or to
normalize hand-edited files.`,
		Usage: "genui fmt <tree.yaml|tree.json>",
		Run:   runFmt,
	})
}

func runFmt(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one tree file is required\n\nUsage: genui fmt <tree.yaml>")
	}
	cfg, err := loadProject()
	if err != nil {
		return err
	}
	t, err := readTree(args[0], cfg)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}
