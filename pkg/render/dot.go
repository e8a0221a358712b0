// Package render converts a combined record set into Graphviz output for
// quick visual inspection of an import, independent of the graph store.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/layerlens/layerlens/pkg/combine"
)

// ToDOT converts a record set to Graphviz DOT format. Packages become box
// nodes (layer labels shown under the name), dependency edges point from
// package to dependency. Node and edge order follow the set's sorted name
// order so output is deterministic.
func ToDOT(set combine.Set) string {
	var buf bytes.Buffer
	buf.WriteString("digraph packages {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	names := set.Names()
	for _, name := range names {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", name, nodeLabel(name, set[name]))
	}

	buf.WriteString("\n")
	for _, name := range names {
		for _, dep := range set[name].Dependencies {
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(name string, rec combine.Record) string {
	if len(rec.Layers) == 0 {
		return name
	}
	return name + "\n" + strings.Join(rec.Layers, ", ")
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
