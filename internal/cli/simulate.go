package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gildedrose/internal/wire"
)

// SimulateCmd returns the simulate command
func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Age the inventory and print it for every day",
		Long: `Age the inventory for a number of days and print the state of every item,
starting with day 0 (the initial inventory).

Without --file the built-in demo inventory is used. An inventory file is YAML:

  items:
    - name: Aged Brie
      sell_in: 2
      quality: 0

Examples:
  rose simulate                        # demo inventory, 2 days
  rose simulate --days 30              # demo inventory, 30 days
  rose simulate -f shop.yaml --table   # own inventory as a table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			file, _ := cmd.Flags().GetString("file")
			table, _ := cmd.Flags().GetBool("table")

			adapter, err := wire.InventoryAdapterWithOutput(cmd.Context(), file, logger, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if table {
				return adapter.Table(cmd.Context(), days)
			}
			return adapter.Simulate(cmd.Context(), days)
		},
	}

	cmd.Flags().IntP("days", "d", 2, "Number of days to simulate")
	cmd.Flags().StringP("file", "f", "", "YAML inventory file (default: demo inventory)")
	cmd.Flags().Bool("table", false, "Print an aligned table with categories")

	return cmd
}
