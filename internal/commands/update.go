package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bohnfeli/clicky/internal/models"
	"github.com/bohnfeli/clicky/internal/service"
)

var (
	updateTitleFlag       string
	updateDescriptionFlag string
	updateAssigneeFlag    string
	updateClearDescFlag   bool
	updateClearAssignFlag bool
)

var updateCmd = &cobra.Command{
	Use:   "update <card-id>",
	Short: "Update a card's fields",
	Long: `Update one or more fields of a card. Only the flags you pass change
anything; --clear-description and --clear-assignee reset those fields.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := models.CardUpdate{
			ClearDescription: updateClearDescFlag,
			ClearAssignee:    updateClearAssignFlag,
		}
		if cmd.Flags().Changed("title") {
			update.Title = &updateTitleFlag
		}
		if cmd.Flags().Changed("description") && !updateClearDescFlag {
			update.Description = &updateDescriptionFlag
		}
		if cmd.Flags().Changed("assignee") && !updateClearAssignFlag {
			update.Assignee = &updateAssigneeFlag
		}

		cards := service.NewCardService(boardBase())
		card, err := cards.Update(args[0], update)
		if err != nil {
			return err
		}

		color.Green("Updated %s\n", card.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitleFlag, "title", "t", "", "new title")
	updateCmd.Flags().StringVarP(&updateDescriptionFlag, "description", "d", "", "new description")
	updateCmd.Flags().StringVarP(&updateAssigneeFlag, "assignee", "a", "", "new assignee")
	updateCmd.Flags().BoolVar(&updateClearDescFlag, "clear-description", false, "remove the description")
	updateCmd.Flags().BoolVar(&updateClearAssignFlag, "clear-assignee", false, "remove the assignee")
	rootCmd.AddCommand(updateCmd)
}
