package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const checkoutTree = `schema_version: v1.2.0
root:
  id: checkout
  kind: LinearLayout
  attributes: {padding_start: 8}
  children:
    - {id: title, kind: Text, attributes: {text: "Pay <link1>now</link1>"}}
    - {id: email, kind: TextInput, attributes: {model: email, hint: Email}}
    - id: terms
      kind: ToggleButton
      attributes: {model: terms, visible: false}
`

// project writes genui.yaml plus the given files into a temp dir, changes
// into it, and captures stdout.
func project(t *testing.T, cfg string, files map[string]string) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()
	if cfg != "" {
		files["genui.yaml"] = cfg
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)

	var out bytes.Buffer
	prev := stdout
	stdout = &out
	t.Cleanup(func() { stdout = prev })
	return &out
}

func TestExecute_Version(t *testing.T) {
	out := project(t, "", map[string]string{})
	if err := Execute([]string{"version"}); err != nil {
		t.Fatalf("Execute(version) error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "genui version "+Version) {
		t.Errorf("output = %q", out.String())
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	project(t, "", map[string]string{})
	if err := Execute([]string{"deploy"}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Execute(deploy) error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	out := project(t, "schema: {min_version: v1.1.0}\n", map[string]string{
		"checkout.yaml": checkoutTree,
		"old.yaml":      strings.Replace(checkoutTree, "v1.2.0", "v1.0.0", 1),
		"nomodel.yaml": `schema_version: v1.2.0
root: {id: email, kind: TextInput}
`,
	})

	err := Execute([]string{"validate", "checkout.yaml", "old.yaml", "nomodel.yaml"})
	if err == nil || !strings.Contains(err.Error(), "2 of 3") {
		t.Fatalf("validate error = %v, want 2 of 3 failures", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("output lines = %q", lines)
	}
	if lines[0] != "ok   checkout.yaml (4 views)" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "FAIL old.yaml") || !strings.Contains(lines[1], "older than required") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "FAIL nomodel.yaml") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestRender_Plain(t *testing.T) {
	out := project(t, "screen: {density: 2}\n", map[string]string{"checkout.yaml": checkoutTree})

	if err := Execute([]string{"render", "--plain", "checkout.yaml"}); err != nil {
		t.Fatalf("render error = %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"LinearLayout #checkout padding=[16 0 0 0]",
		`Text #title text="Pay <link1>now</link1>"`,
		`TextInput #email value="" hint="Email"`,
		"ToggleButton #terms checked=false hidden",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("render output missing %q:\n%s", want, got)
		}
	}
}

func TestRender_JSONDensityOverride(t *testing.T) {
	out := project(t, "", map[string]string{"checkout.yaml": checkoutTree})

	if err := Execute([]string{"render", "--json", "--density=3", "checkout.yaml"}); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out.String(), `"Padding": [`+"\n    24,") {
		t.Errorf("padding not scaled by density 3:\n%s", out.String())
	}
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr string
	}{
		{
			name: "path only",
			args: []string{"a.yaml"},
			want: renderOptions{path: "a.yaml"},
		},
		{
			name: "all flags",
			args: []string{"--theme", "dark", "--density=1.5", "--json", "--plain", "a.yaml"},
			want: renderOptions{path: "a.yaml", theme: "dark", density: 1.5, json: true, plain: true},
		},
		{name: "missing path", args: []string{"--json"}, wantErr: "tree file is required"},
		{name: "two paths", args: []string{"a.yaml", "b.yaml"}, wantErr: "one tree file"},
		{name: "bad density", args: []string{"--density", "-1", "a.yaml"}, wantErr: "positive number"},
		{name: "dangling flag", args: []string{"a.yaml", "--theme"}, wantErr: "requires a value"},
		{name: "unknown flag", args: []string{"--fast", "a.yaml"}, wantErr: "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(renderOptions{})); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFmt_SortsAttributes(t *testing.T) {
	out := project(t, "", map[string]string{
		"t.json": `{"schema_version": "v1.0.0", "root": {"id": "a", "kind": "Text", "attributes": {"visible": true, "text": "hi"}}}`,
	})
	if err := Execute([]string{"fmt", "t.json"}); err != nil {
		t.Fatalf("fmt error = %v", err)
	}
	want := `root:
    attributes:
        text: hi
        visible: true
    id: a
    kind: Text
schema_version: v1.0.0
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("fmt output mismatch (-want +got):\n%s", diff)
	}
}
