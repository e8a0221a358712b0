package cli

import (
	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/store"
)

// namespacesCommand creates the namespaces command.
func (c *CLI) namespacesCommand() *cobra.Command {
	var conn connFlags

	cmd := &cobra.Command{
		Use:   "namespaces",
		Short: "List namespaces present in the graph store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := conn.resolve()
			if err != nil {
				return err
			}

			client, err := store.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			namespaces, err := store.NewImporter(client, c.Logger).Namespaces(ctx)
			if err != nil {
				return err
			}

			if len(namespaces) == 0 {
				printInfo("No namespaces found")
				return nil
			}
			for _, ns := range namespaces {
				printDetail("%s", ns)
			}
			return nil
		},
	}

	conn.register(cmd)
	return cmd
}
