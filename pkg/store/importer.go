package store

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/layerlens/layerlens/pkg/combine"
	"github.com/layerlens/layerlens/pkg/errors"
)

// progressEvery controls how often the importer logs batch progress.
const progressEvery = 100

// ImportStats summarizes one import run.
type ImportStats struct {
	Layers    int // distinct layer nodes upserted
	Packages  int // package nodes upserted
	BelongsTo int // BELONGS_TO relationships upserted
	DependsOn int // DEPENDS_ON relationships upserted

	// DroppedDependencies counts DEPENDS_ON edges that were skipped
	// because the target package does not exist in the namespace.
	// Skipping is non-fatal; the count is diagnostic.
	DroppedDependencies int
}

// Importer performs namespace-scoped, idempotent imports of combined
// package records.
type Importer struct {
	client Client
	logger *log.Logger
}

// NewImporter wraps a store client. A nil logger falls back to the default
// logger.
func NewImporter(client Client, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.Default()
	}
	return &Importer{client: client, logger: logger}
}

// Clear deletes all nodes and their relationships in the given namespace,
// or everything in the store when namespace is empty. Destructive and not
// confirmed; intended to run once before a fresh import.
func (im *Importer) Clear(ctx context.Context, namespace string) error {
	if namespace == "" {
		im.logger.Warn("clearing ALL data from the store")
		_, err := im.client.Run(ctx, cypherClearAll, nil)
		return err
	}
	im.logger.Info("clearing namespace", "namespace", namespace)
	_, err := im.client.Run(ctx, cypherClearNamespace, map[string]any{"namespace": namespace})
	return err
}

// Import upserts the record set into the namespace: Layer nodes, Package
// nodes, BELONGS_TO and DEPENDS_ON relationships, in that order. Every
// statement is a MERGE, so importing the same records again changes
// nothing.
//
// A dependency whose target package is absent from the namespace is
// skipped silently and counted in [ImportStats.DroppedDependencies].
func (im *Importer) Import(ctx context.Context, set combine.Set, namespace string) (ImportStats, error) {
	var stats ImportStats
	if namespace == "" {
		return stats, errors.New(errors.ErrCodeInvalidNamespace, "namespace must not be empty")
	}

	names := set.Names()

	// Layer nodes first so BELONGS_TO endpoints exist.
	for _, layer := range distinctLayers(set) {
		if _, err := im.client.Run(ctx, cypherMergeLayer, map[string]any{
			"name":      layer,
			"namespace": namespace,
		}); err != nil {
			return stats, err
		}
		stats.Layers++
	}
	im.logger.Info("upserted layer nodes", "layers", stats.Layers, "namespace", namespace)

	for _, name := range names {
		if _, err := im.client.Run(ctx, cypherMergePackage, map[string]any{
			"name":      name,
			"namespace": namespace,
		}); err != nil {
			return stats, err
		}
		stats.Packages++
		if stats.Packages%progressEvery == 0 {
			im.logger.Debug("upserting packages", "done", stats.Packages, "total", len(names))
		}
	}
	im.logger.Info("upserted package nodes", "packages", stats.Packages, "namespace", namespace)

	for _, name := range names {
		for _, layer := range set[name].Layers {
			if _, err := im.client.Run(ctx, cypherMergeBelongsTo, map[string]any{
				"package":   name,
				"layer":     layer,
				"namespace": namespace,
			}); err != nil {
				return stats, err
			}
			stats.BelongsTo++
			if stats.BelongsTo%progressEvery == 0 {
				im.logger.Debug("upserting BELONGS_TO relationships", "done", stats.BelongsTo)
			}
		}
	}
	im.logger.Info("upserted BELONGS_TO relationships", "relationships", stats.BelongsTo)

	for _, name := range names {
		for _, dep := range set[name].Dependencies {
			rows, err := im.client.Run(ctx, cypherMergeDependsOn, map[string]any{
				"source":    name,
				"target":    dep,
				"namespace": namespace,
			})
			if err != nil {
				return stats, err
			}
			if merged(rows) {
				stats.DependsOn++
			} else {
				stats.DroppedDependencies++
				im.logger.Debug("dependency target missing in namespace",
					"source", name, "target", dep, "namespace", namespace)
			}
			if n := stats.DependsOn + stats.DroppedDependencies; n%progressEvery == 0 {
				im.logger.Debug("upserting DEPENDS_ON relationships", "done", n)
			}
		}
	}
	im.logger.Info("upserted DEPENDS_ON relationships",
		"relationships", stats.DependsOn, "namespace", namespace)
	if stats.DroppedDependencies > 0 {
		im.logger.Warn("skipped dependencies with no target package in namespace",
			"dropped", stats.DroppedDependencies, "namespace", namespace)
	}

	return stats, nil
}

// distinctLayers returns every distinct layer label across the set, sorted
// so upserts happen in a deterministic order.
func distinctLayers(set combine.Set) []string {
	seen := make(map[string]bool)
	for _, rec := range set {
		for _, layer := range rec.Layers {
			seen[layer] = true
		}
	}
	layers := make([]string, 0, len(seen))
	for layer := range seen {
		layers = append(layers, layer)
	}
	sort.Strings(layers)
	return layers
}

// merged reports whether a relationship MERGE statement actually matched
// its endpoints. The statement aggregates count(r), so a missing endpoint
// yields a zero count rather than an error.
func merged(rows []map[string]any) bool {
	if len(rows) == 0 {
		return false
	}
	return asInt(rows[0]["merged"]) > 0
}

// asInt normalizes the numeric types the driver may hand back.
func asInt(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}
