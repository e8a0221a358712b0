// Package pkg provides the core libraries for layerlens.
//
// # Overview
//
// Layerlens turns BitBake build metadata into a queryable property graph.
// Two tool dumps go in: a reduced task-depends dot file with one edge per
// package dependency, and a package-layers listing mapping packages to the
// layers that provide them. The libraries combine them into one record
// per package, serialize the result to a deterministic text report, and
// import the report into Neo4j under a namespace.
//
// # Packages
//
//   - bitbake: parsers for the two BitBake input formats
//   - combine: merges dependencies and layers into a closed record set
//   - report: deterministic text serialization and its inverse
//   - store: Neo4j client, schema management, import and verification
//   - pipeline: orchestration of the combine and import runs
//   - render: Graphviz DOT/SVG output for a record set
//   - errors: structured error codes shared across packages
//   - buildinfo: version metadata injected at build time
package pkg
