package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/shiftline/shiftline/internal/config"
	"github.com/shiftline/shiftline/pkg/db"
)

// Migrator applies pending schema migrations
type Migrator interface {
	RunMigrations(ctx context.Context) error
}

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Migrator Migrator
	Logger   *zap.Logger
	Ctx      context.Context
}
