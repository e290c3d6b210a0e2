package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/service"
)

var moveCmd = &cobra.Command{
	Use:   "move <card-id> <column-id>",
	Short: "Move a card to another column",
	Long: `Move a card to the given column. Moving a card to the column it is
already in succeeds without touching the card.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := service.NewCardService(boardBase())

		card, err := cards.Move(args[0], args[1])
		if err != nil {
			return err
		}

		color.Green("Moved %s to %s\n", card.ID, card.ColumnID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
