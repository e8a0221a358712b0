package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/layerlens/layerlens/pkg/combine"
	"github.com/layerlens/layerlens/pkg/errors"
)

// depLineRE extracts the dependency name from a "- name (annotation)" line:
// the token up to the first whitespace or opening parenthesis.
var depLineRE = regexp.MustCompile(`^-\s*([^\s(]+)`)

// Read parses a combined report from r back into a record set.
//
// The reader is a line state machine tracking the current package and
// whether it is inside a dependency block. Header lines, the no-layers
// marker and the per-dependency layer annotations are discarded; everything
// else is reconstructed exactly as the writer consumed it.
func Read(r io.Reader) (combine.Set, error) {
	records := make(map[string]*combine.Record)
	var current *combine.Record
	inDeps := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, title) || strings.HasPrefix(line, "="):
			// Header.

		case strings.HasPrefix(line, "Package: "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "Package: "))
			current = &combine.Record{}
			records[name] = current
			inDeps = false

		case current != nil && strings.HasPrefix(line, "Layers: "):
			value := strings.TrimPrefix(line, "Layers: ")
			if value != noLayersMarker {
				for _, layer := range strings.Split(value, ",") {
					current.Layers = append(current.Layers, strings.TrimSpace(layer))
				}
			}

		case current != nil && line == "Dependencies:":
			inDeps = true

		case current != nil && line == noDepsLine:
			inDeps = false

		case current != nil && inDeps && strings.HasPrefix(line, "- "):
			if m := depLineRE.FindStringSubmatch(line); m != nil {
				current.Dependencies = append(current.Dependencies, m[1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	set := make(combine.Set, len(records))
	for name, rec := range records {
		set[name] = *rec
	}
	return set, nil
}

// Import reads the report file at path and returns the decoded record set.
func Import(path string) (combine.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
