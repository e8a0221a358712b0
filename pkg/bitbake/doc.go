// Package bitbake parses the two BitBake-produced text files that feed the
// combined package graph:
//
//   - task-depends.dot: a Graphviz dependency dump. Only edge lines of the
//     form "a" -> "b" are consumed; every other line (graph directives,
//     node declarations, comments) is skipped.
//   - package-layers.txt: a block-structured listing mapping each package to
//     the layers it was resolved from.
//
// Both parsers are deliberately best-effort: a line that does not match the
// expected grammar is silently skipped, never reported as an error. The
// files are tool output and routinely carry unrelated directives, warnings
// and summaries between the lines that matter.
//
// Package names are normalized with [NormalizeName] before they are used as
// keys anywhere, so multilib spellings such as "lib32-glibc" collapse onto
// "glibc".
package bitbake
