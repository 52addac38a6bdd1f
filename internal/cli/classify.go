package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gildedrose/internal/wire"
)

// ClassifyCmd returns the classify command
func ClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [name...]",
		Short: "Show the category an item name falls into",
		Long: `Show the category of each item name.

Categories are matched on the start of the name, in this order:
"Aged Brie", "Sulfuras", "Backstage passes", "Conjured". Anything else is normal.

Examples:
  rose classify "Aged Brie item"
  rose classify "Conjured Mana Cake" --expect conjured`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expect, _ := cmd.Flags().GetString("expect")

			adapter := wire.ClassifierAdapterWithOutput(logger, cmd.OutOrStdout())
			return adapter.Classify(cmd.Context(), args, expect)
		},
	}

	cmd.Flags().String("expect", "", "Fail unless every name has this category")

	return cmd
}

// CategoriesCmd returns the categories command
func CategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List item categories and how they age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.ClassifierAdapterWithOutput(logger, cmd.OutOrStdout()).Categories()
			return nil
		},
	}
}
