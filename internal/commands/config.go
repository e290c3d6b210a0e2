package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/config"
)

var (
	configAssigneeFlag string
	configBoardDirFlag string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the user configuration",
	Long: `Without flags, print the current configuration. With flags, update the
configuration file at ~/.clicky/config.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		changed := false
		if cmd.Flags().Changed("default-assignee") {
			cfg.DefaultAssignee = configAssigneeFlag
			changed = true
		}
		if cmd.Flags().Changed("board-dir") {
			cfg.BoardDir = configBoardDirFlag
			changed = true
		}

		if changed {
			if err := cfg.Save(path); err != nil {
				return err
			}
			color.Green("Saved %s\n", path)
		}

		fmt.Printf("  default-assignee: %s\n", cfg.DefaultAssignee)
		fmt.Printf("  board-dir:        %s\n", cfg.BoardDir)

		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configAssigneeFlag, "default-assignee", "", "assignee pre-filled on new cards")
	configCmd.Flags().StringVar(&configBoardDirFlag, "board-dir", "", "fixed board directory (empty means the working directory)")
	rootCmd.AddCommand(configCmd)
}
