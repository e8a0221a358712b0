package store

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/layerlens/layerlens/pkg/errors"
)

// EnsureStatus is the outcome of one create-if-absent schema statement.
type EnsureStatus int

const (
	// StatusCreated means the constraint or index did not exist and was
	// created by this call.
	StatusCreated EnsureStatus = iota

	// StatusExisted means an equivalent constraint or index already
	// existed. Treated as success.
	StatusExisted

	// StatusFailed means the statement failed for a reason other than
	// prior existence.
	StatusFailed
)

// String returns the lowercase status name.
func (s EnsureStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusExisted:
		return "existed"
	default:
		return "failed"
	}
}

// EnsureResult reports the outcome for one schema element.
type EnsureResult struct {
	Name   string
	Kind   string // "constraint" or "index"
	Status EnsureStatus
	Err    error // set only when Status is StatusFailed
}

// schemaStatements are issued without IF NOT EXISTS so prior existence is
// observable: the server's already-exists error is classified as
// StatusExisted rather than swallowed alongside real failures.
var schemaStatements = []struct {
	name   string
	kind   string
	cypher string
}{
	{
		name:   "package_name_namespace",
		kind:   "constraint",
		cypher: `CREATE CONSTRAINT package_name_namespace FOR (p:Package) REQUIRE (p.name, p.namespace) IS UNIQUE`,
	},
	{
		name:   "layer_name_namespace",
		kind:   "constraint",
		cypher: `CREATE CONSTRAINT layer_name_namespace FOR (l:Layer) REQUIRE (l.name, l.namespace) IS UNIQUE`,
	},
	{
		name:   "package_namespace",
		kind:   "index",
		cypher: `CREATE INDEX package_namespace FOR (p:Package) ON (p.namespace)`,
	},
	{
		name:   "layer_namespace",
		kind:   "index",
		cypher: `CREATE INDEX layer_namespace FOR (l:Layer) ON (l.namespace)`,
	},
}

// EnsureSchema creates the uniqueness constraints on (name, namespace) for
// Package and Layer nodes plus supporting namespace indexes.
//
// Every statement reports an explicit tri-state result. An element that
// already exists is success; the returned error is non-nil only if at
// least one element genuinely failed, and the full result list is returned
// either way.
func EnsureSchema(ctx context.Context, client Client) ([]EnsureResult, error) {
	results := make([]EnsureResult, 0, len(schemaStatements))
	failed := 0

	for _, stmt := range schemaStatements {
		res := EnsureResult{Name: stmt.name, Kind: stmt.kind, Status: StatusCreated}
		if _, err := client.Run(ctx, stmt.cypher, nil); err != nil {
			if isAlreadyExists(err) {
				res.Status = StatusExisted
			} else {
				res.Status = StatusFailed
				res.Err = err
				failed++
			}
		}
		results = append(results, res)
	}

	if failed > 0 {
		return results, errors.New(errors.ErrCodeSchemaFailed, "%d of %d schema statements failed", failed, len(schemaStatements))
	}
	return results, nil
}

// isAlreadyExists reports whether err is the server telling us the
// constraint or index (or an equivalent schema rule) is already present.
func isAlreadyExists(err error) bool {
	var neoErr *neo4j.Neo4jError
	if !stderrors.As(err, &neoErr) {
		return false
	}
	return strings.Contains(neoErr.Code, "AlreadyExists") ||
		strings.Contains(neoErr.Code, "EquivalentSchemaRule")
}
