package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// ListPositionsCmd creates the list-positions command
func ListPositionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-positions",
		Short: "List all positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := services.Positions(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d positions:\n\n", len(positions))
			for _, position := range positions {
				description := ""
				if position.Description != nil {
					description = fmt.Sprintf(" - %s", *position.Description)
				}
				fmt.Printf("- %s (%s)%s [%s]\n", position.Display, position.Name, description, position.ID)
			}
			fmt.Println()

			return nil
		},
	}
}
