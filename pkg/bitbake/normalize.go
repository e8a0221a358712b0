package bitbake

import "strings"

// multilibPrefix is the multilib/vendor prefix BitBake prepends to 32-bit
// variants of a package. Both spellings refer to the same logical package.
const multilibPrefix = "lib32-"

// NormalizeName strips the multilib prefix from a package name, repeating
// until none remains so that stacked spellings collapse too. Normalization
// is idempotent: a name without the prefix is returned as-is.
func NormalizeName(name string) string {
	for strings.HasPrefix(name, multilibPrefix) {
		name = strings.TrimPrefix(name, multilibPrefix)
	}
	return name
}
