package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// AssignUserCmd creates the assign-user command
func AssignUserCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign-user <shift_id> <user_id>",
		Short: "Assign a user to a shift, raising its headcount if it is already full",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID := args[0]
			userID := args[1]

			slotID, err := services.AssignUser(app.Ctx, app.Database, app.Logger, shiftID, userID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ User assigned!\n\n")
			fmt.Printf("Slot ID:  %s\n", slotID)
			fmt.Printf("Shift ID: %s\n", shiftID)
			fmt.Printf("User ID:  %s\n\n", userID)

			return nil
		},
	}
}
