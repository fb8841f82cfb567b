package cmd

import (
	"fmt"
	"stonex_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/spf13/cobra"
)

var forceSeed bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import the bundled collection into the catalog store",
	Long: `Writes the bundled granite collection into the configured store.
An existing catalog is left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, closeStore, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		existing, err := st.ReadAll(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 && !forceSeed {
			fmt.Fprintf(cmd.OutOrStdout(), "catalog already holds %d items, use --force to overwrite\n", len(existing))
			return nil
		}

		catalog := services.NewCatalogService(logger, cfg, st, nil, nil)
		count, err := catalog.Reseed(ctx)
		if err != nil {
			logger.Error("Seeding failed", gecho.Field("error", err))
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d items\n", count)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&forceSeed, "force", false, "overwrite an existing catalog")
}
