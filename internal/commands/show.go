package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/service"
	"github.com/bohnfeli/clicky/internal/util"
)

var showCmd = &cobra.Command{
	Use:   "show <card-id>",
	Short: "Show the full details of a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := service.NewCardService(boardBase())

		card, err := cards.Get(args[0])
		if err != nil {
			return err
		}

		board, err := cards.Boards().Load()
		if err != nil {
			return err
		}
		columnName := card.ColumnID
		if column, err := board.FindColumn(card.ColumnID); err == nil {
			columnName = column.Name
		}

		color.Cyan("%s\n", card.ID)
		fmt.Printf("  Title:       %s\n", card.Title)
		if card.Description != "" {
			fmt.Printf("  Description: %s\n", card.Description)
		}
		fmt.Printf("  Column:      %s (%s)\n", columnName, card.ColumnID)
		if card.Assignee != "" {
			fmt.Printf("  Assignee:    %s\n", card.Assignee)
		}
		fmt.Printf("  Created:     %s\n", util.FormatTime(card.CreatedAt))
		fmt.Printf("  Updated:     %s\n", util.FormatTime(card.UpdatedAt))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
