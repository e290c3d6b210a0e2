package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/service"
	"github.com/bohnfeli/clicky/internal/util"
)

var (
	listColumnFlag   string
	listAssigneeFlag string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards, grouped by column",
	Long: `List the cards on the board in workflow order. Both filters are exact
matches: --column takes a column ID, --assignee an assignee name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := service.NewCardService(boardBase())

		board, err := cards.Boards().Load()
		if err != nil {
			return err
		}
		if listColumnFlag != "" {
			if _, err := board.FindColumn(listColumnFlag); err != nil {
				return err
			}
		}

		listed, err := cards.List(listColumnFlag, listAssigneeFlag)
		if err != nil {
			return err
		}

		shown := 0
		for _, column := range board.Columns {
			if listColumnFlag != "" && column.ID != listColumnFlag {
				continue
			}

			var inColumn int
			for _, card := range listed {
				if card.ColumnID == column.ID {
					inColumn++
				}
			}

			color.Cyan("%s (%d)\n", column.Name, inColumn)
			for _, card := range listed {
				if card.ColumnID != column.ID {
					continue
				}
				line := fmt.Sprintf("  %s  %s", card.ID, util.Truncate(card.Title, 60))
				if card.Assignee != "" {
					line += fmt.Sprintf("  [%s]", card.Assignee)
				}
				fmt.Println(line)
				shown++
			}
			fmt.Println()
		}

		if shown == 0 {
			fmt.Println("No cards match.")
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listColumnFlag, "column", "c", "", "only cards in this column ID")
	listCmd.Flags().StringVarP(&listAssigneeFlag, "assignee", "a", "", "only cards with this assignee")
	rootCmd.AddCommand(listCmd)
}
