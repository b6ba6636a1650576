package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// ListEventsCmd creates the list-events command
func ListEventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-events <month> <year>",
		Short: "List the events starting within a calendar month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("month must be a number: %w", err)
			}
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("year must be a number: %w", err)
			}

			events, err := services.EventsByMonth(app.Ctx, app.Database, app.Logger, month, year, app.Cfg.Location())
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Printf("\nNo events in %d-%02d.\n", year, month)
				return nil
			}

			fmt.Printf("\nFound %d events in %d-%02d:\n\n", len(events), year, month)
			for _, event := range events {
				location := ""
				if event.Location != nil {
					location = fmt.Sprintf(" @ %s", *event.Location)
				}
				fmt.Printf("- %s  %s%s (%s)\n",
					event.TimeBegin.In(app.Cfg.Location()).Format("2006-01-02 15:04"),
					event.Name,
					location,
					event.ID,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
