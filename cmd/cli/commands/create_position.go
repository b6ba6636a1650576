package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// CreatePositionCmd creates the create-position command
func CreatePositionCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-position <name> <display>",
		Short: "Create a position (role) that shifts can require",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.NewPosition{Name: args[0], Display: args[1]}
			if description, _ := cmd.Flags().GetString("description"); description != "" {
				input.Description = &description
			}

			positionID, err := services.CreatePosition(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Position created!\n\n")
			fmt.Printf("Position ID: %s\n", positionID)
			fmt.Printf("Name:        %s\n\n", input.Name)

			return nil
		},
	}

	cmd.Flags().String("description", "", "Position description")

	return cmd
}
