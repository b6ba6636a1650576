package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListUsersCmd creates the list-users command
func ListUsersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all user accounts known to the scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Database.Users(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			fmt.Printf("\nFound %d users:\n\n", len(users))
			for _, user := range users {
				fmt.Printf("- %s (%s) - %s\n", user.DisplayName, user.ID, user.Email)
			}
			fmt.Println()

			return nil
		},
	}
}
