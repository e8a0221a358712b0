// Package store persists combined package records into a Neo4j property
// graph, scoped by namespace.
//
// # Model
//
// Two node kinds and two relationship kinds:
//
//	(:Package {name, namespace})
//	(:Layer   {name, namespace})
//	(:Package)-[:BELONGS_TO {namespace}]->(:Layer)
//	(:Package)-[:DEPENDS_ON {namespace}]->(:Package)
//
// (name, namespace) is unique per node kind. Namespaces isolate imports
// completely: identical names in different namespaces are distinct entities
// and relationships never cross a namespace boundary.
//
// # Idempotence
//
// Every mutation is a single parameterized MERGE statement, so re-importing
// identical records leaves counts unchanged. A run interrupted between
// statements leaves the namespace in a consistent, re-importable state.
//
// # Store access
//
// All operations go through the narrow [Client] interface; [Open] returns
// the Neo4j-backed implementation. Each statement runs in its own session,
// and the driver is released by Close on every exit path.
package store
