package bitbake

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/layerlens/layerlens/pkg/errors"
)

// edgeRE matches dependency edges in a task-depends dot dump:
//
//	"source" -> "target"
//
// Trailing syntax after the target (attributes, semicolons) is ignored.
var edgeRE = regexp.MustCompile(`^"([^"]+)"\s*->\s*"([^"]+)"`)

// ParseTaskDepends reads a task-depends.dot stream and returns a mapping
// from package name to the set of its direct dependency names.
//
// Both endpoint names are normalized before insertion. Duplicate edges
// collapse because targets are held in a set. Packages that never appear
// as an edge source are absent from the result; the combiner recovers them
// via dependency closure.
func ParseTaskDepends(r io.Reader) (map[string]map[string]bool, error) {
	deps := make(map[string]map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := edgeRE.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		from := NormalizeName(m[1])
		to := NormalizeName(m[2])
		if deps[from] == nil {
			deps[from] = make(map[string]bool)
		}
		deps[from][to] = true
	}

	return deps, scanner.Err()
}

// ParseTaskDependsFile opens path and parses it with [ParseTaskDepends].
func ParseTaskDependsFile(path string) (map[string]map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ParseTaskDepends(f)
}
