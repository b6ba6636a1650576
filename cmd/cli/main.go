package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiftline/shiftline/cmd/cli/commands"
	"github.com/shiftline/shiftline/internal/config"
	"github.com/shiftline/shiftline/pkg/postgres"
	"github.com/shiftline/shiftline/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftline",
		Short: "Shiftline CLI - Manage events, shifts, and volunteer assignments",
		Long:  `A CLI tool for managing scheduled events, their staffing shifts, volunteer slot assignments, and reusable event templates.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	app = &commands.AppContext{}

	// Add all commands
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.CreateEventCmd(app))
	rootCmd.AddCommand(commands.ListEventsCmd(app))
	rootCmd.AddCommand(commands.ViewEventCmd(app))
	rootCmd.AddCommand(commands.CreatePositionCmd(app))
	rootCmd.AddCommand(commands.ListPositionsCmd(app))
	rootCmd.AddCommand(commands.CreateShiftCmd(app))
	rootCmd.AddCommand(commands.SetShiftQuantityCmd(app))
	rootCmd.AddCommand(commands.DeleteShiftCmd(app))
	rootCmd.AddCommand(commands.AssignUserCmd(app))
	rootCmd.AddCommand(commands.RemoveSlotCmd(app))
	rootCmd.AddCommand(commands.CreateTemplateCmd(app))
	rootCmd.AddCommand(commands.ListTemplatesCmd(app))
	rootCmd.AddCommand(commands.ViewTemplateCmd(app))
	rootCmd.AddCommand(commands.AddTemplatePositionsCmd(app))
	rootCmd.AddCommand(commands.CreateEventFromTemplateCmd(app))
	rootCmd.AddCommand(commands.CreateEventSeriesCmd(app))
	rootCmd.AddCommand(commands.ListUsersCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, and the database connection
func initApp() error {
	app.Ctx = context.Background()

	// Load configuration
	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Connect to postgres
	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Database = database
	app.Migrator = database
	app.Logger.Debug("Database connection established")

	return nil
}
