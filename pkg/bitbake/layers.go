package bitbake

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/layerlens/layerlens/pkg/errors"
)

// annotationPrefixes mark diagnostic lines bitbake-layers interleaves with
// the package blocks. They are skipped wherever they appear.
var annotationPrefixes = []string{"WARNING:", "NOTE:", "Summary:"}

// ParseLayerIndex reads a package-layers.txt stream and returns a mapping
// from package name to its layer labels in file order.
//
// The format is block-structured: a line "name:" opens a block for that
// package, and each following non-blank line contributes one layer label
// (its first whitespace-delimited token) until the next block header.
// Re-opening a block for a name seen earlier appends to its existing list.
// Duplicate labels are preserved as written.
func ParseLayerIndex(r io.Reader) (map[string][]string, error) {
	layers := make(map[string][]string)
	current := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isAnnotation(line) {
			continue
		}

		if strings.HasSuffix(line, ":") {
			current = NormalizeName(strings.TrimSuffix(line, ":"))
			continue
		}
		if current == "" {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			layers[current] = append(layers[current], fields[0])
		}
	}

	return layers, scanner.Err()
}

// ParseLayerIndexFile opens path and parses it with [ParseLayerIndex].
func ParseLayerIndexFile(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ParseLayerIndex(f)
}

func isAnnotation(line string) bool {
	for _, p := range annotationPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
