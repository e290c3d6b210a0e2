package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/service"
	"github.com/bohnfeli/clicky/internal/util"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show board metadata and per-column counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		boards := service.NewBoardService(boardBase())

		board, err := boards.Load()
		if err != nil {
			return err
		}

		color.Cyan("%s\n", board.Name)
		fmt.Printf("  ID:        %s\n", board.ID)
		fmt.Printf("  Prefix:    %s\n", board.CardIDPrefix)
		fmt.Printf("  Next card: %s-%03d\n", board.CardIDPrefix, board.NextCardNumber)
		fmt.Printf("  Cards:     %d\n", len(board.Cards))
		fmt.Printf("  Created:   %s\n", util.FormatTime(board.CreatedAt))
		fmt.Printf("  Updated:   %s\n", util.FormatTime(board.UpdatedAt))
		fmt.Printf("  File:      %s\n", boards.BoardPath())
		fmt.Println()

		for _, column := range board.Columns {
			fmt.Printf("  %-14s %d\n", column.Name, len(board.CardsInColumn(column.ID)))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
