package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/gildedrose/internal/logging"
	"github.com/example/gildedrose/internal/version"
)

// logger is replaced by the root command's PersistentPreRunE.
var logger = zap.NewNop()

// NewRootCmd returns the rose root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "rose",
		Short:   "rose - ages the Gilded Rose inventory day by day",
		Version: version.String(),
		Long: `rose simulates the Gilded Rose inventory.

Every day each item's sell-in countdown drops by one and its quality changes
according to its category (normal, aged-brie, sulfuras, backstage-passes,
conjured). The category is derived from the start of the item's name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			l, err := logging.New(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every aged item to stderr")

	rootCmd.AddCommand(SimulateCmd())
	rootCmd.AddCommand(ClassifyCmd())
	rootCmd.AddCommand(CategoriesCmd())

	return rootCmd
}
