package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
	"github.com/shiftline/shiftline/pkg/db"
)

// AddTemplatePositionsCmd creates the add-template-positions command
func AddTemplatePositionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add-template-positions <template_id> <position_id:quantity>...",
		Short: "Add positions to a template's roster; already-attached positions are skipped",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]

			entries := make([]db.TemplatePositionEntry, 0, len(args)-1)
			for _, pair := range args[1:] {
				positionID, quantityStr, found := strings.Cut(pair, ":")
				if !found {
					return fmt.Errorf("%q: roster entries must be given as position_id:quantity", pair)
				}
				quantity, err := strconv.Atoi(quantityStr)
				if err != nil {
					return fmt.Errorf("%q: quantity must be a number: %w", pair, err)
				}
				entries = append(entries, db.TemplatePositionEntry{PositionID: positionID, Quantity: quantity})
			}

			ids, err := services.CreateTemplatePositions(app.Ctx, app.Database, app.Logger, templateID, entries)
			if err != nil {
				return err
			}

			skipped := len(entries) - len(ids)
			fmt.Printf("\n✓ %d positions added", len(ids))
			if skipped > 0 {
				fmt.Printf(" (%d already attached, skipped)", skipped)
			}
			fmt.Printf("\n\n")

			return nil
		},
	}
}
