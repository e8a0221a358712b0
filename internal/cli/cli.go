// Package cli implements the layerlens command-line interface.
//
// Commands cover the full pipeline: combining the two BitBake source files
// into the combined report, importing a report into Neo4j under a
// namespace, verifying and listing namespaces, rendering a report as a
// Graphviz diagram, and serving the verification reporter over HTTP.
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "layerlens"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "layerlens",
		Short:        "Layerlens imports BitBake package graphs into Neo4j",
		Long:         `Layerlens combines BitBake dependency dumps with layer assignments into a deterministic report and imports it into Neo4j as a namespaced property graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.combineCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.namespacesCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
