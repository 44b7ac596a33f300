package uitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/genui/pkg/view"
)

// UpdateEnv is the environment variable that rewrites golden files instead
// of comparing against them.
const UpdateEnv = "GENUI_UPDATE_SNAPSHOTS"

// MatchesFile compares snap against the golden file at path.
func MatchesFile(t TestingT, snap view.Snapshot, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := UpdateFile(snap, path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	actual, err := marshalSnapshot(snap)
	if err != nil {
		t.Fatalf("failed to encode snapshot: %v", err)
		return
	}
	if !bytes.Equal(expected, actual) {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s",
			path, unifiedDiff(string(expected), string(actual)), UpdateEnv, t.Name())
	}
}

// UpdateFile writes snap to path, creating parent directories.
func UpdateFile(snap view.Snapshot, path string) error {
	data, err := marshalSnapshot(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func marshalSnapshot(s view.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}
	return buf.String()
}
