package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// ListTemplatesCmd creates the list-templates command
func ListTemplatesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-templates",
		Short: "List all event templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := services.Templates(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d templates:\n\n", len(templates))
			for _, template := range templates {
				window := template.TimeBegin
				if template.TimeEnd != nil {
					window = fmt.Sprintf("%s-%s", template.TimeBegin, *template.TimeEnd)
				}
				fmt.Printf("- %s  %s [%s]\n", template.Display, window, template.ID)
			}
			fmt.Println()

			return nil
		},
	}
}
