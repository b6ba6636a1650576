package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// ViewEventCmd creates the view-event command
func ViewEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "view-event <event_id>",
		Short: "Show an event with its shifts and who fills them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]

			event, err := services.EventByID(app.Ctx, app.Database, app.Logger, eventID)
			if err != nil {
				return err
			}

			roster, err := services.EventRoster(app.Ctx, app.Database, app.Logger, eventID)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s\n", event.Name)
			fmt.Printf("Begins: %s\n", event.TimeBegin.In(app.Cfg.Location()).Format("2006-01-02 15:04 (Monday)"))
			if event.TimeEnd != nil {
				fmt.Printf("Ends:   %s\n", event.TimeEnd.In(app.Cfg.Location()).Format("2006-01-02 15:04"))
			}
			if event.Location != nil {
				fmt.Printf("Where:  %s\n", *event.Location)
			}
			if event.Description != nil {
				fmt.Printf("\n%s\n", *event.Description)
			}

			if len(roster) == 0 {
				fmt.Println("\nNo shifts yet.")
				return nil
			}

			fmt.Printf("\nShifts:\n")
			for _, shift := range roster {
				fmt.Printf("\n  %s: %d/%d filled (%s)\n", shift.Position.Display, len(shift.Slots), shift.Quantity, shift.ID)
				for _, slot := range shift.Slots {
					fmt.Printf("    • %s (%s)\n", slot.User.DisplayName, slot.ID)
				}
				for i := len(shift.Slots); i < shift.Quantity; i++ {
					fmt.Printf("    ◦ open\n")
				}
			}
			fmt.Println()

			return nil
		},
	}
}
