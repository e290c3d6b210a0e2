package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/service"
)

var initNameFlag string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new board in the current directory",
	Long: `Create a board with the default To Do, In Progress and Done columns.
The board is stored in .clicky/board.json under the target directory and the
name defaults to the directory name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		boards := service.NewBoardService(basePath())

		board, err := boards.Initialize(initNameFlag)
		if err != nil {
			return err
		}

		color.Green("Initialized board %q\n", board.Name)
		fmt.Printf("  ID:       %s\n", board.ID)
		fmt.Printf("  Prefix:   %s\n", board.CardIDPrefix)
		fmt.Printf("  Columns:  ")
		for i, column := range board.Columns {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(column.Name)
		}
		fmt.Println()
		fmt.Printf("  File:     %s\n", boards.BoardPath())

		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initNameFlag, "name", "n", "", "board name (defaults to the directory name)")
	rootCmd.AddCommand(initCmd)
}
