package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/config"
	"github.com/bohnfeli/clicky/internal/storage"
	"github.com/bohnfeli/clicky/internal/ui"
)

var globalConfig *config.Config

var pathFlag string

var rootCmd = &cobra.Command{
	Use:   "clicky",
	Short: "A kanban board for your terminal",
	Long: `clicky is a kanban board that lives in a single JSON file next to your
project. Cards move through columns via short subcommands, or interactively:
running clicky with no arguments opens the board view.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(boardBase(), globalConfig)
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// basePath resolves the directory a board lives in (or will live in):
// the --path flag, then the configured board directory, then the
// current working directory.
func basePath() string {
	if pathFlag != "" {
		return pathFlag
	}
	if globalConfig != nil && globalConfig.BoardDir != "" {
		return globalConfig.BoardDir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// boardBase resolves the directory of an existing board. When neither the
// flag nor the config pins a directory, it walks up from the working
// directory looking for a board, like git looks for its repository root.
func boardBase() string {
	if pathFlag != "" || (globalConfig != nil && globalConfig.BoardDir != "") {
		return basePath()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	if root, ok := storage.FindBoardRoot(cwd); ok {
		return root
	}
	return cwd
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&pathFlag, "path", "p", "", "board directory (defaults to the working directory)")
}
