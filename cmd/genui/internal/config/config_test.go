package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := &Resolved{
		Root:           dir,
		Density:        DefaultDensity,
		Theme:          DefaultTheme,
		ResourceDir:    filepath.Join(dir, DefaultResourceDir),
		PreloadWorkers: DefaultPreloadWorkers,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
screen:
  density: 2.5
  theme: Dark
resources:
  dir: /srv/assets
  preload_workers: 8
errors:
  verbose: true
schema:
  min_version: v1.1.0
`)
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := &Resolved{
		Root:             dir,
		Density:          2.5,
		Theme:            "dark",
		ResourceDir:      "/srv/assets",
		PreloadWorkers:   8,
		Verbose:          true,
		MinSchemaVersion: "v1.1.0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
	if got.Palette().Name != "dark" {
		t.Errorf("Palette() = %q, want dark", got.Palette().Name)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"negative density", "screen: {density: -1}", "screen.density"},
		{"huge density", "screen: {density: 12}", "screen.density"},
		{"unknown theme", "screen: {theme: sepia}", "screen.theme"},
		{"workers", "resources: {preload_workers: -2}", "preload_workers"},
		{"min version", "schema: {min_version: '1.0'}", "schema.min_version"},
		{"malformed yaml", "screen: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Resolve() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "screen: {density: 1}\n")
	nested := filepath.Join(root, "screens", "checkout")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("FindProjectRoot() = %q, want %q", got, root)
	}
}
