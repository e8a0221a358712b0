package cli

import (
	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/store"
)

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	var (
		conn      connFlags
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report node and relationship counts",
		Long: `Report Package/Layer node counts, relationship counts, and the top
five packages by outgoing dependency count. Without --namespace the counts
cover the whole store.`,
		Args: cobra.NoArgs,
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

			rep, err := store.NewImporter(client, c.Logger).Verify(ctx, namespace)
			if err != nil {
				return err
			}

			printVerification(rep)
			return nil
		},
	}

	conn.register(cmd)
	cmd.Flags().StringVar(&namespace, "namespace", "", "restrict counts to one namespace")

	return cmd
}
