// Package pipeline orchestrates the two layerlens batch runs: combining
// the BitBake source files into a report, and importing a report into the
// graph store. It owns progress logging and timing; the heavy lifting
// lives in pkg/bitbake, pkg/combine, pkg/report and pkg/store.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/layerlens/layerlens/pkg/bitbake"
	"github.com/layerlens/layerlens/pkg/combine"
	"github.com/layerlens/layerlens/pkg/report"
	"github.com/layerlens/layerlens/pkg/store"
)

// Runner executes pipeline runs. It is stateless except for the logger;
// a single Runner can serve any number of sequential runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// CombineResult summarizes a combine run.
type CombineResult struct {
	Set                combine.Set
	PackagesWithDeps   int
	PackagesWithLayers int
}

// Combine parses the task-depends dot file and the layer index, merges
// them into a closure-complete record set, and writes the combined report
// to outPath.
func (r *Runner) Combine(ctx context.Context, dotPath, layersPath, outPath string) (*CombineResult, error) {
	start := time.Now()

	deps, err := bitbake.ParseTaskDependsFile(dotPath)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("parsed dependency edges", "file", dotPath, "packages", len(deps))

	layers, err := bitbake.ParseLayerIndexFile(layersPath)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("parsed layer index", "file", layersPath, "packages", len(layers))

	set := combine.Combine(deps, layers)

	if err := report.Export(set, outPath); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	result := &CombineResult{Set: set}
	for _, name := range set.Names() {
		if len(set[name].Dependencies) > 0 {
			result.PackagesWithDeps++
		}
		if len(set[name].Layers) > 0 {
			result.PackagesWithLayers++
		}
	}

	r.Logger.Info("wrote combined report",
		"file", outPath,
		"packages", len(set),
		"with_dependencies", result.PackagesWithDeps,
		"with_layers", result.PackagesWithLayers,
		"duration", time.Since(start).Round(time.Millisecond))

	return result, nil
}

// ImportOptions configures an import run.
type ImportOptions struct {
	Namespace string
	Clear     bool // clear the target namespace before importing
	ClearAll  bool // clear the entire store before importing; wins over Clear
}

// ImportResult summarizes an import run.
type ImportResult struct {
	RunID  string
	Schema []store.EnsureResult
	Stats  store.ImportStats
	Report *store.Report
}

// Import ensures the schema, optionally clears, upserts the record set
// into the namespace, and finishes with a verification report for that
// namespace. The caller owns the client and its lifetime.
func (r *Runner) Import(ctx context.Context, client store.Client, set combine.Set, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := r.Logger.With("run_id", runID, "namespace", opts.Namespace)

	importer := store.NewImporter(client, logger)
	result := &ImportResult{RunID: runID}

	schema, err := store.EnsureSchema(ctx, client)
	result.Schema = schema
	if err != nil {
		return result, err
	}
	for _, res := range schema {
		logger.Debug("ensured schema element", "kind", res.Kind, "name", res.Name, "status", res.Status.String())
	}

	switch {
	case opts.ClearAll:
		if err := importer.Clear(ctx, ""); err != nil {
			return result, err
		}
	case opts.Clear:
		if err := importer.Clear(ctx, opts.Namespace); err != nil {
			return result, err
		}
	}

	stats, err := importer.Import(ctx, set, opts.Namespace)
	result.Stats = stats
	if err != nil {
		return result, err
	}

	verification, err := importer.Verify(ctx, opts.Namespace)
	if err != nil {
		return result, err
	}
	result.Report = verification

	logger.Info("import complete",
		"packages", stats.Packages,
		"layers", stats.Layers,
		"depends_on", stats.DependsOn,
		"belongs_to", stats.BelongsTo,
		"dropped", stats.DroppedDependencies,
		"duration", time.Since(start).Round(time.Millisecond))

	return result, nil
}
