package render

import (
	"strings"
	"testing"

	"github.com/layerlens/layerlens/pkg/combine"
)

func TestToDOT(t *testing.T) {
	set := combine.Set{
		"foo": {Dependencies: []string{"bar"}, Layers: []string{"core"}},
		"bar": {},
	}

	dot := ToDOT(set)

	for _, want := range []string{
		"digraph packages {",
		`"foo" [label="foo\ncore"];`,
		`"bar" [label="bar"];`,
		`"foo" -> "bar";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	set := combine.Set{
		"zlib": {Dependencies: []string{"libgcc"}},
		"acl":  {},
		"libgcc": {},
	}
	if ToDOT(set) != ToDOT(set) {
		t.Error("two conversions of the same set differ")
	}
}
