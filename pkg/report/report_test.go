package report

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/layerlens/layerlens/pkg/bitbake"
	"github.com/layerlens/layerlens/pkg/combine"
	"github.com/layerlens/layerlens/pkg/errors"
)

func TestWrite_Golden(t *testing.T) {
	edges := `"lib32-foo" -> "bar";
"bar" -> "baz";
`
	layerIndex := `foo:
  core
bar:
  extra
`
	deps, err := bitbake.ParseTaskDepends(strings.NewReader(edges))
	if err != nil {
		t.Fatal(err)
	}
	layers, err := bitbake.ParseLayerIndex(strings.NewReader(layerIndex))
	if err != nil {
		t.Fatal(err)
	}
	set := combine.Combine(deps, layers)

	var buf bytes.Buffer
	if err := Write(set, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "Package Dependency and Layer Information\n" +
		strings.Repeat("=", 80) + "\n" +
		"\n" +
		"Package: bar\n" +
		"  Layers: extra\n" +
		"  Dependencies:\n" +
		"    - baz (layer: unknown)\n" +
		"\n" +
		"Package: baz\n" +
		"  Layers: (not found in package-layers.txt)\n" +
		"  Dependencies: none\n" +
		"\n" +
		"Package: foo\n" +
		"  Layers: core\n" +
		"  Dependencies:\n" +
		"    - bar (layers: extra)\n" +
		"\n"
	if got := buf.String(); got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWrite_Deterministic(t *testing.T) {
	set := combine.Set{
		"zlib": {Dependencies: []string{"libgcc"}},
		"acl":  {Layers: []string{"meta"}},
		"libgcc": {},
	}

	var a, b bytes.Buffer
	if err := Write(set, &a); err != nil {
		t.Fatal(err)
	}
	if err := Write(set, &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("two writes of the same set differ")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		set  combine.Set
	}{
		{
			name: "basic",
			set: combine.Set{
				"foo": {Dependencies: []string{"bar"}, Layers: []string{"core"}},
				"bar": {Dependencies: []string{"baz"}, Layers: []string{"extra"}},
				"baz": {},
			},
		},
		{
			name: "multiple layers and deps",
			set: combine.Set{
				"app":  {Dependencies: []string{"acl", "zlib"}, Layers: []string{"meta", "meta-app", "meta"}},
				"acl":  {Layers: []string{"meta"}},
				"zlib": {},
			},
		},
		{
			name: "cyclic dependencies",
			set: combine.Set{
				"a": {Dependencies: []string{"b"}},
				"b": {Dependencies: []string{"a"}},
			},
		},
		{
			name: "empty set",
			set:  combine.Set{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(tt.set, &buf); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			got, err := Read(&buf)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.set) {
				t.Errorf("round trip mismatch:\ngot:  %v\nwant: %v", got, tt.set)
			}
		})
	}
}

func TestRead_AnnotationsDiscarded(t *testing.T) {
	input := `Package Dependency and Layer Information
================================================================================

Package: foo
  Layers: core
  Dependencies:
    - bar (layers: extra, more)
    - baz (layer: unknown)

`
	set, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if want := []string{"bar", "baz"}; !reflect.DeepEqual(set["foo"].Dependencies, want) {
		t.Errorf("Dependencies = %v, want %v", set["foo"].Dependencies, want)
	}
}

func TestExportImport(t *testing.T) {
	set := combine.Set{
		"foo": {Dependencies: []string{"bar"}, Layers: []string{"core"}},
		"bar": {},
	}

	path := filepath.Join(t.TempDir(), "combined.txt")
	if err := Export(set, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	got, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !reflect.DeepEqual(got, set) {
		t.Errorf("Import = %v, want %v", got, set)
	}
}

func TestImport_Missing(t *testing.T) {
	if _, err := Import(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWrite_RejectsCommaLayer(t *testing.T) {
	set := combine.Set{
		"foo": {Layers: []string{"meta,extra"}},
	}

	var buf bytes.Buffer
	err := Write(set, &buf)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("Write error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
	if buf.Len() != 0 {
		t.Errorf("Write emitted %d bytes before rejecting", buf.Len())
	}
}
