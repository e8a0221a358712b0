package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/layerlens/layerlens/pkg/combine"
	"github.com/layerlens/layerlens/pkg/errors"
)

const (
	title          = "Package Dependency and Layer Information"
	noLayersMarker = "(not found in package-layers.txt)"
	noDepsLine     = "Dependencies: none"
)

// Write serializes a record set to w in the combined report format.
// Packages appear in sorted name order, so identical record sets always
// produce byte-identical reports.
//
// Layer labels are written comma-separated, so a label containing a comma
// cannot be represented; Write rejects such a set rather than emit a report
// that would read back differently.
func Write(set combine.Set, w io.Writer) error {
	for _, name := range set.Names() {
		for _, layer := range set[name].Layers {
			if strings.Contains(layer, ",") {
				return errors.New(errors.ErrCodeInvalidFormat,
					"layer %q of package %q contains a comma, which the report format cannot represent", layer, name)
			}
		}
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, strings.Repeat("=", 80))
	fmt.Fprintln(bw)

	for _, name := range set.Names() {
		rec := set[name]
		fmt.Fprintf(bw, "Package: %s\n", name)

		if len(rec.Layers) > 0 {
			fmt.Fprintf(bw, "  Layers: %s\n", strings.Join(rec.Layers, ", "))
		} else {
			fmt.Fprintf(bw, "  Layers: %s\n", noLayersMarker)
		}

		if len(rec.Dependencies) > 0 {
			fmt.Fprintln(bw, "  Dependencies:")
			for _, dep := range rec.Dependencies {
				// Annotate from the combined set, not the source layer
				// mapping, so closure-recovered packages resolve too.
				if depLayers := set[dep].Layers; len(depLayers) > 0 {
					fmt.Fprintf(bw, "    - %s (layers: %s)\n", dep, strings.Join(depLayers, ", "))
				} else {
					fmt.Fprintf(bw, "    - %s (layer: unknown)\n", dep)
				}
			}
		} else {
			fmt.Fprintf(bw, "  %s\n", noDepsLine)
		}

		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// Export writes a record set to the report file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(set combine.Set, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(set, f)
}
