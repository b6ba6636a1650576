package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// CreateEventFromTemplateCmd creates the create-event-from-template command
func CreateEventFromTemplateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-event-from-template <template_id> <date>",
		Short: "Instantiate a template on a date (YYYY-MM-DD), copying its position roster into shifts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]
			date := args[1]

			var createdBy *string
			if creator, _ := cmd.Flags().GetString("created-by"); creator != "" {
				createdBy = &creator
			}

			eventID, err := services.CreateEventFromTemplate(app.Ctx, app.Database, app.Logger, templateID, date, createdBy, app.Cfg.Location())
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event created from template!\n\n")
			fmt.Printf("Event ID: %s\n", eventID)
			fmt.Printf("Date:     %s\n\n", date)

			return nil
		},
	}

	cmd.Flags().String("created-by", "", "Creating user's id")

	return cmd
}
