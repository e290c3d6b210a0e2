package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/service"
)

var deleteForceFlag bool

var deleteCmd = &cobra.Command{
	Use:   "delete <card-id>",
	Short: "Delete a card",
	Long: `Delete a card from the board. The card's ID is retired and will not be
handed out again. Asks for confirmation unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := service.NewCardService(boardBase())

		card, err := cards.Get(args[0])
		if err != nil {
			return err
		}

		if !deleteForceFlag {
			fmt.Printf("Delete %s %q? This cannot be undone. [y/N] ", card.ID, card.Title)
			reader := bufio.NewReader(os.Stdin)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := cards.Delete(card.ID); err != nil {
			return err
		}

		color.Green("Deleted %s\n", card.ID)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForceFlag, "force", "f", false, "delete without asking")
	rootCmd.AddCommand(deleteCmd)
}
