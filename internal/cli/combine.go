package cli

import (
	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/pipeline"
)

// combineCommand creates the combine command.
func (c *CLI) combineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <task-depends.dot> <package-layers.txt> <output.txt>",
		Short: "Combine dependency and layer files into a report",
		Long: `Combine a BitBake task-depends dot dump and a package-layers listing
into the combined report consumed by 'import'.

Lines that do not match the expected grammar in either input are skipped;
both files are tool output and carry unrelated directives. Package names
are normalized (multilib prefix stripped) before use, and the report lists
every package in sorted order so identical inputs always produce identical
output.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(c.Logger)
			result, err := runner.Combine(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			printSuccess("Combined %d packages", len(result.Set))
			printDetail("%d with dependencies, %d with layer info",
				result.PackagesWithDeps, result.PackagesWithLayers)
			printFile(args[2])
			return nil
		},
	}
}
