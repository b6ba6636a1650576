package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// DeleteShiftCmd creates the delete-shift command
func DeleteShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-shift <shift_id>",
		Short: "Remove a shift from its event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := services.DeleteShift(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift %s deleted\n", shiftID)
			return nil
		},
	}
}
