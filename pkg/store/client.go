package store

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/layerlens/layerlens/pkg/errors"
)

// Config holds graph store connection settings.
type Config struct {
	URI      string // bolt/neo4j URI, e.g. "bolt://localhost:7687"
	Username string
	Password string
	Database string // empty selects the server default database
}

// Client executes single parameterized cypher statements against the graph
// store. Each Run call is one atomic statement at the store level; no
// multi-statement transaction is held across calls.
type Client interface {
	// Run executes one cypher statement and returns the collected result
	// rows as key/value maps.
	Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)

	// Close releases the underlying connection. Safe to call once the
	// client is no longer needed, including after a failed operation.
	Close(ctx context.Context) error
}

// Open connects to Neo4j and verifies connectivity before returning a
// [Client]. The caller owns the client and must Close it on every exit
// path.
func Open(ctx context.Context, cfg Config) (Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "create driver for %s", cfg.URI)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect %s", cfg.URI)
	}
	return &boltClient{driver: driver, database: cfg.Database}, nil
}

type boltClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func (c *boltClient) Run(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	for result.Next(ctx) {
		rec := result.Record()
		row := make(map[string]any, len(rec.Keys))
		for i, key := range rec.Keys {
			row[key] = rec.Values[i]
		}
		rows = append(rows, row)
	}
	return rows, result.Err()
}

func (c *boltClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
