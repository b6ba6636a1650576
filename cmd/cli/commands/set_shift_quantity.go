package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// SetShiftQuantityCmd creates the set-shift-quantity command
func SetShiftQuantityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-shift-quantity <shift_id> <quantity>",
		Short: "Set a shift's desired headcount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID := args[0]
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %w", err)
			}

			filled, err := app.Database.CountActiveSlots(app.Ctx, shiftID)
			if err != nil {
				return fmt.Errorf("failed to count filled slots: %w", err)
			}

			if _, err := services.UpdateShiftQuantity(app.Ctx, app.Database, app.Logger, shiftID, quantity); err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift quantity set to %d\n", quantity)
			if minimum := services.MinimumQuantity(filled); quantity < minimum {
				fmt.Printf("⚠️  %d slots are already filled; remove slots or raise the quantity back to %d\n", filled, minimum)
			}
			fmt.Println()

			return nil
		},
	}
}
