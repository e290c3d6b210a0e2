package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/service"
)

var (
	createDescriptionFlag string
	createAssigneeFlag    string
	createColumnFlag      string
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new card",
	Long: `Create a card with the given title. Without --column the card lands in
the first column of the board.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := service.NewCardService(boardBase())

		assignee := createAssigneeFlag
		if !cmd.Flags().Changed("assignee") && globalConfig != nil {
			assignee = globalConfig.DefaultAssignee
		}

		card, err := cards.Create(args[0], createDescriptionFlag, assignee, createColumnFlag)
		if err != nil {
			return err
		}

		color.Green("Created %s\n", card.ID)
		fmt.Printf("  Title:   %s\n", card.Title)
		fmt.Printf("  Column:  %s\n", card.ColumnID)
		if card.Assignee != "" {
			fmt.Printf("  Assignee: %s\n", card.Assignee)
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createDescriptionFlag, "description", "d", "", "card description")
	createCmd.Flags().StringVarP(&createAssigneeFlag, "assignee", "a", "", "card assignee")
	createCmd.Flags().StringVarP(&createColumnFlag, "column", "c", "", "target column ID (defaults to the first column)")
	rootCmd.AddCommand(createCmd)
}
