package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pemdes/webdesa/internal/db"
)

func newDBCmd(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := d.openPool(cmd.Context())
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer pool.Close()

			if err := db.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	})

	return cmd
}
