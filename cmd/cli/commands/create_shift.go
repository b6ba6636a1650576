package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
	"github.com/shiftline/shiftline/pkg/db"
)

// CreateShiftCmd creates the create-shift command
func CreateShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create-shift <event_id> <position_id:quantity>...",
		Short: "Attach shifts to an event, one per position_id:quantity pair",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]

			entries := make([]db.ShiftEntry, 0, len(args)-1)
			for _, pair := range args[1:] {
				positionID, quantityStr, found := strings.Cut(pair, ":")
				if !found {
					return fmt.Errorf("%q: shifts must be given as position_id:quantity", pair)
				}
				quantity, err := strconv.Atoi(quantityStr)
				if err != nil {
					return fmt.Errorf("%q: quantity must be a number: %w", pair, err)
				}
				entries = append(entries, db.ShiftEntry{PositionID: positionID, Quantity: quantity})
			}

			ids, err := services.CreateShifts(app.Ctx, app.Database, app.Logger, eventID, entries)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %d shifts created!\n\n", len(ids))
			for i, id := range ids {
				fmt.Printf("  %2d. %s (quantity %d)\n", i+1, id, entries[i].Quantity)
			}
			fmt.Println()

			return nil
		},
	}
}
