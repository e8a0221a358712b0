package bitbake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTaskDepends(t *testing.T) {
	input := `digraph depends {
  rankdir=LR;
  "busybox" [label="busybox :1.36"];
  "busybox" -> "glibc";
  "busybox" -> "glibc" [style=dotted];
  "lib32-foo" -> "bar";
  "bar" -> "baz";
  // a comment line
}
`
	deps, err := ParseTaskDepends(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTaskDepends failed: %v", err)
	}

	if len(deps) != 3 {
		t.Fatalf("got %d sources, want 3: %v", len(deps), deps)
	}

	// Duplicate edges collapse into the set.
	if got := deps["busybox"]; len(got) != 1 || !got["glibc"] {
		t.Errorf("busybox deps = %v, want {glibc}", got)
	}

	// Both endpoints are normalized.
	if _, ok := deps["lib32-foo"]; ok {
		t.Error("lib32-foo present, want normalized key foo")
	}
	if got := deps["foo"]; !got["bar"] {
		t.Errorf("foo deps = %v, want {bar}", got)
	}
	if got := deps["bar"]; !got["baz"] {
		t.Errorf("bar deps = %v, want {baz}", got)
	}
}

func TestParseTaskDepends_SkipsNonEdgeLines(t *testing.T) {
	input := `not an edge
"unterminated -> "broken
"solo";
  "a" -> "b";
`
	deps, err := ParseTaskDepends(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTaskDepends failed: %v", err)
	}
	if len(deps) != 1 || !deps["a"]["b"] {
		t.Errorf("deps = %v, want only a -> b", deps)
	}
}

func TestParseTaskDependsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "task-depends.dot")
	if err := os.WriteFile(path, []byte("\"a\" -> \"b\";\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deps, err := ParseTaskDependsFile(path)
	if err != nil {
		t.Fatalf("ParseTaskDependsFile failed: %v", err)
	}
	if !deps["a"]["b"] {
		t.Errorf("deps = %v, want a -> b", deps)
	}
}

func TestParseTaskDependsFile_Missing(t *testing.T) {
	if _, err := ParseTaskDependsFile(filepath.Join(t.TempDir(), "nope.dot")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
