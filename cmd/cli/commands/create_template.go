package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// CreateTemplateCmd creates the create-template command
func CreateTemplateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-template <display> <time_begin>",
		Short: "Create a reusable event template; time_begin is HH:MM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.NewTemplate{Display: args[0], TimeBegin: args[1]}

			if end, _ := cmd.Flags().GetString("end"); end != "" {
				input.TimeEnd = &end
			}
			if description, _ := cmd.Flags().GetString("description"); description != "" {
				input.Description = &description
			}
			if location, _ := cmd.Flags().GetString("location"); location != "" {
				input.Location = &location
			}

			templateID, err := services.CreateTemplate(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Template created!\n\n")
			fmt.Printf("Template ID: %s\n", templateID)
			fmt.Printf("Display:     %s\n\n", input.Display)

			return nil
		},
	}

	cmd.Flags().String("end", "", "End time of day (HH:MM)")
	cmd.Flags().String("description", "", "Template description")
	cmd.Flags().String("location", "", "Template location")

	return cmd
}
