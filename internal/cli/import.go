package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/pipeline"
	"github.com/layerlens/layerlens/pkg/report"
	"github.com/layerlens/layerlens/pkg/store"
)

// importCommand creates the import command.
func (c *CLI) importCommand() *cobra.Command {
	var (
		conn      connFlags
		namespace string
		clear     bool
		clearAll  bool
	)

	cmd := &cobra.Command{
		Use:   "import <combined.txt>",
		Short: "Import a combined report into the graph store",
		Long: `Import a combined report into Neo4j under a namespace.

The import is idempotent: every node and relationship is upserted by key,
so re-importing the same report changes nothing. Constraints and indexes
are ensured before the first write. Use --clear to wipe the target
namespace first, or --clear-all to wipe the entire store (destructive,
not confirmed).

A verification report for the namespace is printed when the import
finishes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := conn.resolve()
			if err != nil {
				return err
			}

			set, err := report.Import(args[0])
			if err != nil {
				return err
			}
			c.Logger.Info("parsed combined report", "file", args[0], "packages", len(set))

			spinner := newSpinnerWithContext(ctx, "Connecting to graph store...")
			spinner.Start()
			client, err := store.Open(ctx, cfg)
			if err != nil {
				spinner.StopWithError("Connection failed")
				return err
			}
			spinner.Stop()
			defer client.Close(ctx)

			runner := pipeline.NewRunner(c.Logger)
			result, err := runner.Import(ctx, client, set, pipeline.ImportOptions{
				Namespace: namespace,
				Clear:     clear,
				ClearAll:  clearAll,
			})
			if err != nil {
				return err
			}

			printSuccess("Imported %d packages into namespace %q", result.Stats.Packages, namespace)
			printDetail("%d layers, %d BELONGS_TO, %d DEPENDS_ON",
				result.Stats.Layers, result.Stats.BelongsTo, result.Stats.DependsOn)
			if result.Stats.DroppedDependencies > 0 {
				printWarning("%d dependencies skipped: target not in namespace", result.Stats.DroppedDependencies)
			}
			printVerification(result.Report)
			return nil
		},
	}

	conn.register(cmd)
	cmd.Flags().StringVar(&namespace, "namespace", "", "namespace for this import (required)")
	cmd.Flags().BoolVar(&clear, "clear", false, "clear this namespace before import")
	cmd.Flags().BoolVar(&clearAll, "clear-all", false, "clear ALL data before import (use with caution)")
	_ = cmd.MarkFlagRequired("namespace")

	return cmd
}

// printVerification prints a verification report.
func printVerification(rep *store.Report) {
	if rep == nil {
		return
	}

	fmt.Println()
	title := "Verification"
	if rep.Namespace != "" {
		title = fmt.Sprintf("Verification for namespace %q", rep.Namespace)
	}
	fmt.Println(StyleTitle.Render(title))

	printKeyValue("Packages", fmt.Sprintf("%d", rep.Packages))
	printKeyValue("Layers", fmt.Sprintf("%d", rep.Layers))
	printKeyValue("DEPENDS_ON", fmt.Sprintf("%d", rep.DependsOn))
	printKeyValue("BELONGS_TO", fmt.Sprintf("%d", rep.BelongsTo))

	if len(rep.TopDependers) > 0 {
		fmt.Println()
		printInfo("Top packages by dependency count:")
		for _, top := range rep.TopDependers {
			printDetail("%s: %d dependencies", top.Name, top.Dependencies)
		}
	}
}
