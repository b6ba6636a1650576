package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// ViewTemplateCmd creates the view-template command
func ViewTemplateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "view-template <template_id>",
		Short: "Show a template with its position roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.TemplateByID(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			template := result.Template
			fmt.Printf("\n%s (%s)\n", template.Display, template.Name)
			fmt.Printf("Begins: %s\n", template.TimeBegin)
			if template.TimeEnd != nil {
				fmt.Printf("Ends:   %s\n", *template.TimeEnd)
			}
			if template.Location != nil {
				fmt.Printf("Where:  %s\n", *template.Location)
			}
			if template.Description != nil {
				fmt.Printf("\n%s\n", *template.Description)
			}

			if len(result.Positions) == 0 {
				fmt.Println("\nNo positions on the roster yet.")
				return nil
			}

			fmt.Printf("\nRoster:\n")
			for _, entry := range result.Positions {
				fmt.Printf("  %2d × %s [%s]\n", entry.Quantity, entry.Position.Display, entry.ID)
			}
			fmt.Println()

			return nil
		},
	}
}
