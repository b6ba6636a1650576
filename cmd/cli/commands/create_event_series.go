package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shiftline/shiftline/pkg/core/services"
)

// CreateEventSeriesCmd creates the create-event-series command
func CreateEventSeriesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-event-series <template_id> <rrule> <from> <until>",
		Short: "Instantiate a template on every date an RRULE yields between from and until (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := args[0]
			rule := args[1]

			loc := app.Cfg.Location()
			from, err := time.ParseInLocation("2006-01-02", args[2], loc)
			if err != nil {
				return fmt.Errorf("from must be YYYY-MM-DD: %w", err)
			}
			until, err := time.ParseInLocation("2006-01-02", args[3], loc)
			if err != nil {
				return fmt.Errorf("until must be YYYY-MM-DD: %w", err)
			}
			// Include events on the until date itself
			until = until.AddDate(0, 0, 1).Add(-time.Second)

			var createdBy *string
			if creator, _ := cmd.Flags().GetString("created-by"); creator != "" {
				createdBy = &creator
			}

			result, err := services.CreateEventSeries(app.Ctx, app.Database, app.Logger, templateID, rule, from, until, createdBy, loc)
			if err != nil {
				if result != nil && len(result.EventIDs) > 0 {
					fmt.Printf("\n⚠️  Series stopped after %d events: %v\n", len(result.EventIDs), err)
					return nil
				}
				return err
			}

			fmt.Printf("\n✓ %d events created!\n\n", len(result.EventIDs))
			for i, date := range result.Dates {
				fmt.Printf("  %2d. %s (%s)\n", i+1, date.In(loc).Format("2006-01-02 (Monday)"), result.EventIDs[i])
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("created-by", "", "Creating user's id")

	return cmd
}
