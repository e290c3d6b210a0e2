package commands

import (
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/ui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive board view",
	Long: `Open the full-screen board view. The same view opens when clicky is
run with no arguments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(boardBase(), globalConfig)
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
