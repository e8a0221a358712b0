// Package combine reconciles the two BitBake parser outputs into one
// closure-complete record set, the in-memory form behind the combined
// report and the graph import.
package combine

import "sort"

// Record holds the combined information for one package: its direct
// dependencies and the layers it belongs to.
//
// Dependencies are sorted so the record set serializes deterministically.
// Layers keep their source file order and may contain duplicates.
type Record struct {
	Dependencies []string
	Layers       []string
}

// Set maps a normalized package name to its combined record.
type Set map[string]Record

// Names returns all package names in the set in sorted order.
// This is the canonical iteration order for serialization.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Combine merges a dependency mapping and a layer mapping into one record
// set.
//
// The set covers the union of all names seen anywhere: dependency sources,
// layer index entries, and every dependency target. A name known only as a
// target still gets a record, with no dependencies and no layers, so the
// dependency closure is always complete.
func Combine(deps map[string]map[string]bool, layers map[string][]string) Set {
	all := make(map[string]bool, len(deps)+len(layers))
	for name, targets := range deps {
		all[name] = true
		for target := range targets {
			all[target] = true
		}
	}
	for name := range layers {
		all[name] = true
	}

	set := make(Set, len(all))
	for name := range all {
		rec := Record{Layers: layers[name]}
		if targets := deps[name]; len(targets) > 0 {
			rec.Dependencies = make([]string, 0, len(targets))
			for target := range targets {
				rec.Dependencies = append(rec.Dependencies, target)
			}
			sort.Strings(rec.Dependencies)
		}
		set[name] = rec
	}
	return set
}
