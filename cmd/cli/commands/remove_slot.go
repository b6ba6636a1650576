package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// RemoveSlotCmd creates the remove-slot command
func RemoveSlotCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-slot <slot_id>",
		Short: "Remove a filled slot from its shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotID, err := services.DeleteSlot(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Slot %s removed\n", slotID)
			return nil
		},
	}
}
