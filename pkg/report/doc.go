// Package report reads and writes the combined package report, the
// hand-off artifact between the combiner and the graph importer.
//
// # Format
//
// The report is a stable line-oriented text format, not incidental output.
// It opens with a title line and a rule of 80 '=' characters, then lists
// every package in sorted order:
//
//	Package: busybox
//	  Layers: meta, meta-extra
//	  Dependencies:
//	    - glibc (layers: meta)
//	    - libgcc (layer: unknown)
//
// A package with no layer information carries the literal marker
// "(not found in package-layers.txt)", and a package with no dependencies
// carries "Dependencies: none" instead of a dependency block. Each package
// stanza is terminated by a blank line.
//
// The per-dependency layer annotation is informational only: it is derived
// from the full record set at write time and discarded again at read time.
// Modulo that annotation, Read reconstructs exactly the record set Write
// consumed, so write-then-read round-trips.
//
// Because layer lists are comma-separated, a layer label containing a comma
// has no representation in the format; Write refuses such a set instead of
// producing a report that would read back as extra labels.
package report
