package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/errors"
	"github.com/layerlens/layerlens/pkg/render"
	"github.com/layerlens/layerlens/pkg/report"
)

// renderCommand creates the render command for visualizing a combined report.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render <combined.txt>",
		Short: "Render a combined report as a Graphviz diagram",
		Long: `Render a combined report as a Graphviz node-link diagram.

With --format dot the DOT source is written as-is; with --format svg it is
rendered through Graphviz. The output path defaults to the input path with
the format as extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want dot or svg)", format)
			}

			set, err := report.Import(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("loaded combined report", "file", args[0], "packages", len(set))

			dot := render.ToDOT(set)

			data := []byte(dot)
			if format == "svg" {
				if data, err = render.SVG(dot); err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
			}

			if output == "" {
				output = outputPath(args[0], format)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("Rendered %d packages", len(set))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default input path with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot (default), svg")

	return cmd
}

// outputPath swaps the input's extension for the render format.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, ".txt")
	return base + "." + format
}
