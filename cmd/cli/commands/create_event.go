package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// CreateEventCmd creates the create-event command
func CreateEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-event <name> <time_begin>",
		Short: "Create an event; time_begin is \"YYYY-MM-DD HH:MM\" in the configured timezone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			timeBegin, err := time.ParseInLocation("2006-01-02 15:04", args[1], app.Cfg.Location())
			if err != nil {
				return fmt.Errorf("time_begin must be \"YYYY-MM-DD HH:MM\": %w", err)
			}

			input := services.NewEvent{Name: name, TimeBegin: timeBegin}

			if end, _ := cmd.Flags().GetString("end"); end != "" {
				timeEnd, err := time.ParseInLocation("2006-01-02 15:04", end, app.Cfg.Location())
				if err != nil {
					return fmt.Errorf("--end must be \"YYYY-MM-DD HH:MM\": %w", err)
				}
				input.TimeEnd = &timeEnd
			}
			if description, _ := cmd.Flags().GetString("description"); description != "" {
				input.Description = &description
			}
			if location, _ := cmd.Flags().GetString("location"); location != "" {
				input.Location = &location
			}
			if createdBy, _ := cmd.Flags().GetString("created-by"); createdBy != "" {
				input.CreatedBy = &createdBy
			}

			eventID, err := services.CreateEvent(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event created!\n\n")
			fmt.Printf("Event ID: %s\n", eventID)
			fmt.Printf("Name:     %s\n", name)
			fmt.Printf("Begins:   %s\n\n", timeBegin.Format("2006-01-02 15:04 (Monday)"))

			return nil
		},
	}

	cmd.Flags().String("end", "", "End time (\"YYYY-MM-DD HH:MM\")")
	cmd.Flags().String("description", "", "Event description")
	cmd.Flags().String("location", "", "Event location")
	cmd.Flags().String("created-by", "", "Creating user's id")

	return cmd
}
